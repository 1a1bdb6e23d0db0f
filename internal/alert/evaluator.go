package alert

import (
	"time"

	"github.com/google/uuid"

	"TickerSentinel/internal/model"
)

// MaxPercentage bounds alert thresholds; a move past 50% is outside what a
// threshold alert is for.
const MaxPercentage = 50.0

// NewRule validates and builds a fire-once alert rule bound to a base price.
func NewRule(symbol string, direction model.Direction, percentage, basePrice float64) (*model.AlertRule, error) {
	if percentage <= 0 || percentage > MaxPercentage {
		return nil, model.ErrInvalidPercentage
	}
	multiplier := 1 + percentage/100
	if direction == model.DirectionDrop {
		multiplier = 1 - percentage/100
	}
	return &model.AlertRule{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		Direction:   direction,
		Percentage:  percentage,
		BasePrice:   basePrice,
		TargetPrice: basePrice * multiplier,
		CreatedAt:   time.Now(),
	}, nil
}

// Evaluate checks the active rules against the current price and splits them
// into fired and remaining. Fire-once: a fired rule never comes back. Rules
// for other symbols are left dormant in the remaining set untouched.
func Evaluate(symbol string, price float64, rules []*model.AlertRule) (fired, remaining []*model.AlertRule) {
	remaining = make([]*model.AlertRule, 0, len(rules))
	for _, r := range rules {
		if r.Symbol == symbol && r.Satisfied(price) {
			fired = append(fired, r)
			continue
		}
		remaining = append(remaining, r)
	}
	return fired, remaining
}
