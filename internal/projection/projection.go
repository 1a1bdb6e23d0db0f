// Package projection computes percentage-based price projections. It is a
// pure calculator: no state, recomputed on every relevant input change.
package projection

import "TickerSentinel/internal/model"

// MaxPercentage bounds projection input.
const MaxPercentage = 100.0

// Result is a projected price and its delta from the current price.
type Result struct {
	ProjectedPrice float64
	Delta          float64
}

// Project maps (current price, percentage, direction) to a projected price.
// Percentage must be in (0, 100].
func Project(currentPrice, percentage float64, direction model.Direction) (Result, error) {
	if percentage <= 0 || percentage > MaxPercentage {
		return Result{}, model.ErrInvalidPercentage
	}
	multiplier := 1 + percentage/100
	if direction == model.DirectionDrop {
		multiplier = 1 - percentage/100
	}
	projected := currentPrice * multiplier
	return Result{
		ProjectedPrice: projected,
		Delta:          projected - currentPrice,
	}, nil
}
