package model

import "time"

// PricePoint is a single point in a quote's daily history series.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Price  float64   `json:"price"`
	Volume float64   `json:"volume"`
}

// Quote is the authoritative snapshot for the active ticker. It is created
// whole by either the acquisition layer (live) or the synthetic generator
// (fallback) and replaced, never rebuilt in place, on each search. Only the
// refresh paths mutate the price/change fields of an existing Quote.
type Quote struct {
	Ticker string
	Name   string
	Sector string

	CurrentPrice float64
	// PrevClose is the day-open-equivalent base the daily change is measured
	// against. The random-walk updater recomputes change fields against it.
	PrevClose          float64
	DailyChange        float64
	DailyChangePercent float64

	WeekHigh52   float64
	WeekLow52    float64
	DayRangeLow  float64
	DayRangeHigh float64
	Volume       float64

	MarketCap   float64
	PERatio     float64
	TargetPrice float64

	// History holds 30 daily points in chronological ascending order. It is
	// immutable once produced for a given quote.
	History []PricePoint

	// EarningsDate is zero when unknown.
	EarningsDate   time.Time
	DaysToEarnings int

	// IsLiveData is true only when the price came from a successful network
	// acquisition inside the freshness window.
	IsLiveData    bool
	IsKnownTicker bool

	FetchedAt time.Time
}

// SetPrice updates the current price and recomputes the daily change fields
// against PrevClose. History, day range and 52-week range stay untouched so
// the display keeps visual continuity across refreshes.
func (q *Quote) SetPrice(price float64) {
	q.CurrentPrice = price
	q.DailyChange = price - q.PrevClose
	if q.PrevClose != 0 {
		q.DailyChangePercent = q.DailyChange / q.PrevClose * 100
	}
	if price < q.DayRangeLow {
		q.DayRangeLow = price
	}
	if price > q.DayRangeHigh {
		q.DayRangeHigh = price
	}
}
