package quote

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"TickerSentinel/internal/model"
)

const historyPoints = 30

// Generator produces plausible synthetic quotes for any ticker. Known
// tickers are anchored to the static reference table; unknown tickers get
// randomized parameters. Generated quotes are never reported as live data.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator seeded from the current time.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSeededGenerator creates a deterministic Generator for tests.
func NewSeededGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Generate produces a full synthetic Quote for the ticker.
func (g *Generator) Generate(ticker string) *model.Quote {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	now := g.now()

	entry, known := LookupReference(symbol)
	if !known {
		entry = ReferenceEntry{
			BasePrice: g.uniform(50, 250),
			Name:      fmt.Sprintf("%s Corporation", symbol),
			Sector:    "Unknown",
		}
	}
	base := entry.BasePrice

	changePct := g.uniform(-0.04, 0.04)
	current := base * (1 + changePct)

	q := &model.Quote{
		Ticker:        symbol,
		Name:          entry.Name,
		Sector:        entry.Sector,
		PrevClose:     base,
		MarketCap:     entry.MarketCap,
		PERatio:       entry.PERatio,
		TargetPrice:   entry.TargetPrice,
		IsLiveData:    false,
		IsKnownTicker: known,
		FetchedAt:     now,
	}
	q.SetPrice(current)

	// 52-week range: table values when present, otherwise a wide plausible
	// annual envelope around the base price.
	if entry.WeekHigh52 > 0 && entry.WeekLow52 > 0 {
		q.WeekHigh52 = entry.WeekHigh52
		q.WeekLow52 = entry.WeekLow52
	} else {
		q.WeekHigh52 = base * (1 + g.uniform(0.10, 0.52))
		q.WeekLow52 = base * (1 - g.uniform(0.10, 0.52))
	}

	// Intraday range: tight envelope clamped so it always contains the
	// current price.
	q.DayRangeLow = math.Min(current*(1-g.uniform(0, 0.03)), current)
	q.DayRangeHigh = math.Max(current*(1+g.uniform(0, 0.03)), current)

	if entry.AvgVolume > 0 {
		q.Volume = math.Floor(entry.AvgVolume * g.uniform(0.7, 1.3))
	} else {
		q.Volume = math.Floor(g.uniform(5_000_000, 55_000_000))
	}

	q.History = g.generateHistory(base, now)

	if entry.Earnings != "" {
		if d, err := time.Parse("2006-01-02", entry.Earnings); err == nil {
			q.EarningsDate = d
		}
	}
	if q.EarningsDate.IsZero() {
		q.EarningsDate = now.AddDate(0, 0, 14+g.rng.Intn(91))
	}
	q.DaysToEarnings = int(math.Ceil(q.EarningsDate.Sub(now).Hours() / 24))

	return q
}

// generateHistory walks backward from the base price over 30 daily steps of
// ±3% and returns the series in chronological ascending order.
func (g *Generator) generateHistory(base float64, now time.Time) []model.PricePoint {
	points := make([]model.PricePoint, historyPoints)
	price := base
	for i := 0; i < historyPoints; i++ {
		points[historyPoints-1-i] = model.PricePoint{
			Date:   now.AddDate(0, 0, -i),
			Price:  price,
			Volume: math.Floor(g.uniform(5_000_000, 55_000_000)),
		}
		price *= 1 + g.uniform(-0.03, 0.03)
	}
	return points
}
