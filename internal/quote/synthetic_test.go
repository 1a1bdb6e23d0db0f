package quote

import (
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
}

func TestGenerate_KnownTicker(t *testing.T) {
	g := NewSeededGenerator(1, fixedNow)
	q := g.Generate("aapl")

	if q.Ticker != "AAPL" {
		t.Fatalf("expected normalized ticker AAPL, got %q", q.Ticker)
	}
	if !q.IsKnownTicker {
		t.Error("AAPL should be flagged as a known ticker")
	}
	if q.IsLiveData {
		t.Error("synthetic quotes must never claim live provenance")
	}
	entry, _ := LookupReference("AAPL")
	if q.Name != entry.Name {
		t.Errorf("expected name %q from reference table, got %q", entry.Name, q.Name)
	}
	if q.PrevClose != entry.BasePrice {
		t.Errorf("expected base price %.2f, got %.2f", entry.BasePrice, q.PrevClose)
	}
}

func TestGenerate_UnknownTicker(t *testing.T) {
	g := NewSeededGenerator(2, fixedNow)
	q := g.Generate("ZZZQ")

	if q.IsKnownTicker {
		t.Error("ZZZQ should not be flagged as known")
	}
	if !strings.HasPrefix(q.Name, "ZZZQ ") {
		t.Errorf("expected derived company name, got %q", q.Name)
	}
	if q.Sector != "Unknown" {
		t.Errorf("expected Unknown sector, got %q", q.Sector)
	}
	if q.PrevClose < 50 || q.PrevClose >= 250 {
		t.Errorf("unknown base price %.2f outside [50, 250)", q.PrevClose)
	}
}

func TestGenerate_PriceEnvelopes(t *testing.T) {
	g := NewSeededGenerator(3, fixedNow)
	for i := 0; i < 200; i++ {
		q := g.Generate("MSFT")
		pct := q.DailyChangePercent
		if pct < -4.0-1e-9 || pct > 4.0+1e-9 {
			t.Fatalf("daily change %.4f%% outside ±4%%", pct)
		}
		if q.DayRangeLow > q.CurrentPrice || q.DayRangeHigh < q.CurrentPrice {
			t.Fatalf("day range [%.2f, %.2f] does not contain current %.2f",
				q.DayRangeLow, q.DayRangeHigh, q.CurrentPrice)
		}
		if q.WeekLow52 >= q.WeekHigh52 {
			t.Fatalf("52-week low %.2f not below high %.2f", q.WeekLow52, q.WeekHigh52)
		}
		if q.Volume <= 0 {
			t.Fatalf("non-positive volume %.0f", q.Volume)
		}
	}
}

func TestGenerate_History(t *testing.T) {
	g := NewSeededGenerator(4, fixedNow)
	q := g.Generate("TSLA")

	if len(q.History) != 30 {
		t.Fatalf("expected 30 history points, got %d", len(q.History))
	}
	for i := 1; i < len(q.History); i++ {
		if !q.History[i].Date.After(q.History[i-1].Date) {
			t.Fatalf("history dates not ascending at index %d", i)
		}
	}
	last := q.History[len(q.History)-1]
	if !last.Date.Equal(fixedNow()) {
		t.Errorf("last history point should be dated now, got %v", last.Date)
	}
	if last.Price != q.PrevClose {
		t.Errorf("last history point should anchor at base %.2f, got %.2f", q.PrevClose, last.Price)
	}
}

func TestGenerate_Earnings(t *testing.T) {
	g := NewSeededGenerator(5, fixedNow)

	q := g.Generate("ZZZQ")
	if q.EarningsDate.IsZero() {
		t.Fatal("expected a synthesized earnings date")
	}
	days := q.EarningsDate.Sub(fixedNow()).Hours() / 24
	if days < 14 || days > 104 {
		t.Errorf("synthesized earnings %.0f days out, expected within [14, 104]", days)
	}
	if q.DaysToEarnings <= 0 {
		t.Errorf("expected positive days to earnings, got %d", q.DaysToEarnings)
	}
}

func TestLookupReference_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"aapl", "AAPL", "AaPl"} {
		if _, ok := LookupReference(s); !ok {
			t.Errorf("expected %q to resolve in the reference table", s)
		}
	}
	if _, ok := LookupReference("NOPE"); ok {
		t.Error("NOPE should not resolve")
	}
	if !IsKnownTicker("spy") {
		t.Error("SPY should be a known ticker")
	}
}
