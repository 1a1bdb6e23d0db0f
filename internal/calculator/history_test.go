package calculator

import (
	"math"
	"testing"

	"TickerSentinel/internal/model"
)

func series(prices ...float64) []model.PricePoint {
	points := make([]model.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = model.PricePoint{Price: p}
	}
	return points
}

func TestHistoryRange(t *testing.T) {
	h := series(10, 50, 20, 40, 30)

	high, low, err := HistoryRange(h, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 50 || low != 10 {
		t.Errorf("expected 50/10, got %.1f/%.1f", high, low)
	}

	// Window shorter than history only scans the tail.
	high, low, _ = HistoryRange(h, 3)
	if high != 40 || low != 20 {
		t.Errorf("tail window: expected 40/20, got %.1f/%.1f", high, low)
	}

	// Window longer than history scans everything.
	high, low, _ = HistoryRange(h, 100)
	if high != 50 || low != 10 {
		t.Errorf("oversized window: expected 50/10, got %.1f/%.1f", high, low)
	}

	if _, _, err := HistoryRange(nil, 5); err == nil {
		t.Error("empty history should error")
	}
}

func TestSMA(t *testing.T) {
	h := series(1, 2, 3, 4, 5)

	got, err := SMA(h, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("expected SMA 3, got %.2f", got)
	}

	got, _ = SMA(h, 2)
	if got != 4.5 {
		t.Errorf("trailing SMA(2): expected 4.5, got %.2f", got)
	}

	if _, err := SMA(h, 10); err == nil {
		t.Error("period longer than history should error")
	}
	if _, err := SMA(h, 0); err == nil {
		t.Error("non-positive period should error")
	}
}

func TestPosition52w(t *testing.T) {
	tests := []struct {
		current, high, low, want float64
	}{
		{150, 200, 100, 0.5},
		{100, 200, 100, 0},
		{200, 200, 100, 1},
		{50, 200, 100, 0},   // clamp below
		{250, 200, 100, 1},  // clamp above
		{100, 100, 100, 0.5}, // degenerate range
	}
	for _, tt := range tests {
		got, err := Position52w(tt.current, tt.high, tt.low)
		if err != nil {
			t.Errorf("current %.0f: unexpected error %v", tt.current, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("current %.0f in [%.0f, %.0f]: expected %.2f, got %.2f",
				tt.current, tt.low, tt.high, tt.want, got)
		}
	}

	if _, err := Position52w(100, 50, 200); err == nil {
		t.Error("inverted range should error")
	}
}

func TestQuoteStats_FallsBackToCurrentPrice(t *testing.T) {
	q := &model.Quote{CurrentPrice: 123}
	stats := QuoteStats(q)
	if stats.High30d != 123 || stats.Low30d != 123 || stats.SMA != 123 {
		t.Errorf("expected current-price fallbacks, got %+v", stats)
	}
	if stats.Position52w != 0.5 {
		t.Errorf("expected neutral 52w position, got %.2f", stats.Position52w)
	}
}

func TestQuoteStats_FullQuote(t *testing.T) {
	q := &model.Quote{
		CurrentPrice: 150,
		WeekHigh52:   200,
		WeekLow52:    100,
		History:      series(120, 180, 140, 160),
	}
	stats := QuoteStats(q)
	if stats.High30d != 180 || stats.Low30d != 120 {
		t.Errorf("expected 180/120, got %.1f/%.1f", stats.High30d, stats.Low30d)
	}
	if stats.SMA != 150 {
		t.Errorf("expected SMA 150, got %.2f", stats.SMA)
	}
	if stats.Position52w != 0.5 {
		t.Errorf("expected 52w position 0.5, got %.2f", stats.Position52w)
	}
}
