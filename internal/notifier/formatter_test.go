package notifier

import (
	"strings"
	"testing"
	"time"

	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
)

func sampleQuote(live bool) *model.Quote {
	return &model.Quote{
		Ticker:             "AAPL",
		Name:               "Apple Inc.",
		Sector:             "Technology",
		CurrentPrice:       182.5,
		PrevClose:          180,
		DailyChange:        2.5,
		DailyChangePercent: 1.39,
		DayRangeLow:        180.1,
		DayRangeHigh:       183.4,
		WeekLow52:          150,
		WeekHigh52:         210,
		Volume:             52_000_000,
		MarketCap:          2_800_000_000_000,
		PERatio:            28.5,
		EarningsDate:       time.Now().AddDate(0, 0, 20),
		DaysToEarnings:     20,
		IsLiveData:         live,
		IsKnownTicker:      true,
	}
}

func TestFormatQuote(t *testing.T) {
	q := sampleQuote(true)
	stats := model.HistoryStats{High30d: 185, Low30d: 175, SMA: 179, Position52w: 0.54}
	info := marketclock.Describe(marketclock.PhaseOpen)

	out := FormatQuote(q, stats, info)
	for _, want := range []string{"AAPL", "Apple Inc.", "182.50", "实时数据", "52,000,000", info.Label} {
		if !strings.Contains(out, want) {
			t.Errorf("quote report missing %q:\n%s", want, out)
		}
	}
}

func TestProvenanceLabel(t *testing.T) {
	if got := provenanceLabel(sampleQuote(true)); got != "实时数据" {
		t.Errorf("live quote: got %q", got)
	}
	if got := provenanceLabel(sampleQuote(false)); got != "演示数据" {
		t.Errorf("known synthetic quote: got %q", got)
	}
	unknown := sampleQuote(false)
	unknown.IsKnownTicker = false
	if got := provenanceLabel(unknown); got != "模拟数据" {
		t.Errorf("unknown synthetic quote: got %q", got)
	}
}

func TestFormatAlertFired(t *testing.T) {
	rule := &model.AlertRule{
		ID: "abcdef1234567890", Symbol: "AAPL", Direction: model.DirectionDrop,
		Percentage: 10, BasePrice: 200, TargetPrice: 180,
	}
	title, body := FormatAlertFired(rule, 179.5)
	if !strings.Contains(title, "AAPL") {
		t.Errorf("title missing symbol: %q", title)
	}
	for _, want := range []string{"下跌", "180.00", "179.50"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %q", want, body)
		}
	}
}

func TestFormatAlertList(t *testing.T) {
	if got := FormatAlertList(nil, "AAPL"); !strings.Contains(got, "暂无") {
		t.Errorf("empty list: got %q", got)
	}

	rules := []*model.AlertRule{
		{ID: "11111111aaaa", Symbol: "AAPL", Direction: model.DirectionRise, Percentage: 5, TargetPrice: 210},
		{ID: "22222222bbbb", Symbol: "MSFT", Direction: model.DirectionDrop, Percentage: 10, TargetPrice: 360},
	}
	out := FormatAlertList(rules, "AAPL")
	if !strings.Contains(out, "11111111") || !strings.Contains(out, "22222222") {
		t.Errorf("expected short IDs in listing:\n%s", out)
	}
	// Only the rule bound to another symbol is marked dormant.
	lines := strings.Split(out, "\n")
	for _, line := range lines {
		if strings.Contains(line, "MSFT") && !strings.Contains(line, "休眠") {
			t.Errorf("MSFT rule should be marked dormant: %q", line)
		}
		if strings.Contains(line, "AAPL") && strings.Contains(line, "休眠") {
			t.Errorf("active-symbol rule wrongly marked dormant: %q", line)
		}
	}
}
