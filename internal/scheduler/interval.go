package scheduler

import (
	"time"

	"TickerSentinel/internal/marketclock"
)

// Interval floors per phase, in seconds. Polling slows monotonically as the
// market moves further from active trading.
const (
	openFloor       = 30
	extendedFloor   = 120
	closedFloor     = 300
	weekendInterval = 600
)

// EffectiveInterval derives the refresh interval from the current market
// phase and the user's base preference. The base acts as a multiplier when it
// would be slower than the phase floor anyway.
func EffectiveInterval(phase marketclock.Phase, baseSeconds int) time.Duration {
	var seconds int
	switch phase {
	case marketclock.PhaseOpen:
		seconds = max(openFloor, baseSeconds)
	case marketclock.PhasePreMarket, marketclock.PhaseAfterHours:
		seconds = max(extendedFloor, baseSeconds*2)
	case marketclock.PhaseClosedWeekday:
		seconds = max(closedFloor, baseSeconds*4)
	default: // closed-weekend
		seconds = weekendInterval
	}
	return time.Duration(seconds) * time.Second
}
