package model

import "time"

// Direction tells which way a price move is expected.
type Direction string

const (
	DirectionRise Direction = "rise"
	DirectionDrop Direction = "drop"
)

// ParseDirection maps user input to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionRise:
		return DirectionRise, true
	case DirectionDrop:
		return DirectionDrop, true
	}
	return "", false
}

// AlertRule is a fire-once threshold alert bound to the quote that was
// active when the rule was created. A rule is destroyed when it fires or
// when the user removes it.
type AlertRule struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Direction   Direction `json:"direction"`
	Percentage  float64   `json:"percentage"`
	BasePrice   float64   `json:"base_price"`
	TargetPrice float64   `json:"target_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Satisfied reports whether the rule's condition holds at the given price.
func (r *AlertRule) Satisfied(price float64) bool {
	if r.Direction == DirectionDrop {
		return price <= r.TargetPrice
	}
	return price >= r.TargetPrice
}
