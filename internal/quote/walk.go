package quote

import (
	"math/rand"
	"time"

	"TickerSentinel/internal/marketclock"
)

// walkProfile holds the per-phase activation probability and maximum step
// magnitude of the synthetic random walk.
type walkProfile struct {
	activation float64
	maxStep    float64
}

func profileFor(phase marketclock.Phase) walkProfile {
	switch phase {
	case marketclock.PhaseOpen:
		return walkProfile{activation: 0.8, maxStep: 0.03}
	case marketclock.PhasePreMarket, marketclock.PhaseAfterHours:
		return walkProfile{activation: 0.4, maxStep: 0.015}
	default: // closed, weekday or weekend
		return walkProfile{activation: 0.1, maxStep: 0.005}
	}
}

// Walker nudges a synthetic price between refreshes so the display stays
// alive without regenerating the whole quote.
type Walker struct {
	rng *rand.Rand
}

// NewWalker creates a Walker seeded from the current time.
func NewWalker() *Walker {
	return &Walker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededWalker creates a deterministic Walker for tests.
func NewSeededWalker(seed int64) *Walker {
	return &Walker{rng: rand.New(rand.NewSource(seed))}
}

// Step draws one random-walk step for the given phase. When the Bernoulli
// activation draw fails the tick is a no-op and moved is false.
func (w *Walker) Step(phase marketclock.Phase, price float64) (newPrice float64, moved bool) {
	p := profileFor(phase)
	if w.rng.Float64() >= p.activation {
		return price, false
	}
	delta := -p.maxStep + w.rng.Float64()*2*p.maxStep
	return price * (1 + delta), true
}
