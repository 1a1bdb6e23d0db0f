package calculator

import (
	"errors"
	"math"

	"TickerSentinel/internal/model"
)

// HistoryRange scans the most recent n points of a history series and
// returns the high and low.
func HistoryRange(history []model.PricePoint, n int) (high, low float64, err error) {
	if len(history) == 0 {
		return 0, 0, errors.New("no history points provided")
	}
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(history); i++ {
		if history[i].Price > high {
			high = history[i].Price
		}
		if history[i].Price < low {
			low = history[i].Price
		}
	}
	return high, low, nil
}

// SMA computes the simple moving average of the trailing period points.
func SMA(history []model.PricePoint, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(history) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(history) - period; i < len(history); i++ {
		sum += history[i].Price
	}
	return sum / float64(period), nil
}

// Position52w returns where the current price sits within the 52-week range
// (0.0 ~ 1.0), clamped at either end.
func Position52w(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}

// QuoteStats derives all display metrics for a quote, substituting the
// current price when a metric cannot be computed.
func QuoteStats(q *model.Quote) model.HistoryStats {
	stats := model.HistoryStats{
		High30d: q.CurrentPrice,
		Low30d:  q.CurrentPrice,
		SMA:     q.CurrentPrice,
	}
	if h, l, err := HistoryRange(q.History, 30); err == nil {
		stats.High30d = h
		stats.Low30d = l
	}
	if sma, err := SMA(q.History, len(q.History)); err == nil {
		stats.SMA = sma
	}
	if pos, err := Position52w(q.CurrentPrice, q.WeekHigh52, q.WeekLow52); err == nil {
		stats.Position52w = pos
	} else {
		stats.Position52w = 0.5
	}
	return stats
}
