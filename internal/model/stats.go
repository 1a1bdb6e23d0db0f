package model

// HistoryStats holds display metrics derived from a quote's history series.
type HistoryStats struct {
	High30d     float64
	Low30d      float64
	SMA         float64 // simple moving average over the full series
	Position52w float64 // 0.0 ~ 1.0 within the 52-week range
}
