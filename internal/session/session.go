// Package session owns the active ticker, the active quote and the alert
// rule set. It replaces what would otherwise be ambient global state with an
// explicit object, which is what makes the generation-token discipline and
// testing straightforward.
package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"TickerSentinel/internal/alert"
	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
	"TickerSentinel/internal/quote"
)

// AlertHandler is invoked for every fired rule, outside the session lock.
type AlertHandler func(rule *model.AlertRule, price float64)

// Session serializes all mutation of the active-quote/active-rules pair
// behind one mutex. Every asynchronous apply carries the generation token of
// the request that started it; a mismatch means a newer search superseded
// the request and the result is discarded.
type Session struct {
	acquirer *quote.Acquirer
	walker   *quote.Walker
	alerts   *alert.Store

	mu           sync.Mutex
	ticker       string
	quote        *model.Quote
	generation   uint64
	baseInterval int // seconds
	onFire       AlertHandler
}

// New creates a Session with the given base refresh interval in seconds.
func New(acquirer *quote.Acquirer, walker *quote.Walker, alerts *alert.Store, baseIntervalSeconds int) *Session {
	if baseIntervalSeconds <= 0 {
		baseIntervalSeconds = 60
	}
	return &Session{
		acquirer:     acquirer,
		walker:       walker,
		alerts:       alerts,
		baseInterval: baseIntervalSeconds,
	}
}

// SetAlertHandler installs the notification callback for fired rules.
func (s *Session) SetAlertHandler(h AlertHandler) {
	s.mu.Lock()
	s.onFire = h
	s.mu.Unlock()
}

// ActiveTicker returns the active ticker symbol, empty before the first
// search.
func (s *Session) ActiveTicker() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker
}

// ActiveQuote returns a copy of the active quote, or nil before the first
// completed search.
func (s *Session) ActiveQuote() *model.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quote == nil {
		return nil
	}
	q := *s.quote
	return &q
}

// Generation returns the current generation token.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// BaseInterval returns the configured base refresh interval in seconds.
func (s *Session) BaseInterval() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseInterval
}

// SetBaseInterval updates the base refresh interval.
func (s *Session) SetBaseInterval(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("base interval must be positive, got %d", seconds)
	}
	s.mu.Lock()
	s.baseInterval = seconds
	s.mu.Unlock()
	return nil
}

// FreshnessWindow is how long after a successful live acquisition the quote
// still counts as live. Derived from the configured refresh interval, with a
// floor of one minute.
func (s *Session) FreshnessWindow() time.Duration {
	w := 2 * time.Duration(s.BaseInterval()) * time.Second
	if w < time.Minute {
		w = time.Minute
	}
	return w
}

// Search acquires a quote for the ticker and makes it active. The acquisition
// suspends outside the lock; if a newer search supersedes this one while the
// round trip is in flight the result is discarded and (nil, nil) is returned.
func (s *Session) Search(ctx context.Context, ticker string) (*model.Quote, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == "" {
		return nil, model.ErrInvalidTicker
	}

	// Replace ticker and invalidate the prior quote atomically, then acquire
	// without holding the lock.
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.ticker = symbol
	s.quote = nil
	s.mu.Unlock()

	q := s.acquirer.Acquire(ctx, symbol)

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		log.Printf("[INFO] discarding stale quote for %s (superseded search)", symbol)
		return nil, nil
	}
	s.quote = q
	fired := s.evaluateLocked()
	out := *q
	s.mu.Unlock()

	s.fire(fired, out.CurrentPrice)
	return &out, nil
}

// ApplyRefreshPrice applies a refresh-in-place price update. The update is
// discarded when the generation token no longer matches or no quote is
// active. History and ranges stay sticky; only price and change fields move.
func (s *Session) ApplyRefreshPrice(gen uint64, price float64) bool {
	s.mu.Lock()
	if s.generation != gen || s.quote == nil {
		s.mu.Unlock()
		return false
	}
	s.quote.SetPrice(price)
	s.quote.IsLiveData = true
	fired := s.evaluateLocked()
	s.mu.Unlock()

	s.fire(fired, price)
	return true
}

// WalkTick applies one synthetic random-walk step for the given phase. Live
// quotes are never walked; a failed activation draw leaves the price alone.
func (s *Session) WalkTick(gen uint64, phase marketclock.Phase) bool {
	s.mu.Lock()
	if s.generation != gen || s.quote == nil || s.quote.IsLiveData {
		s.mu.Unlock()
		return false
	}
	newPrice, moved := s.walker.Step(phase, s.quote.CurrentPrice)
	if !moved {
		s.mu.Unlock()
		return false
	}
	s.quote.SetPrice(newPrice)
	fired := s.evaluateLocked()
	s.mu.Unlock()

	s.fire(fired, newPrice)
	return true
}

// RefreshProvenance downgrades a live quote to synthetic framing once the
// last successful acquisition falls outside the freshness window.
func (s *Session) RefreshProvenance() {
	window := s.FreshnessWindow()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quote == nil || !s.quote.IsLiveData {
		return
	}
	last := s.acquirer.LastLiveAt(s.ticker)
	if last.IsZero() || time.Since(last) > window {
		s.quote.IsLiveData = false
		log.Printf("[INFO] %s live data stale, switching provenance to synthetic", s.ticker)
	}
}

// DisplayQuote returns a copy of the active quote after aging its provenance
// against the freshness window. Display paths use this instead of ActiveQuote
// so a stale live flag never reaches the user.
func (s *Session) DisplayQuote() *model.Quote {
	s.RefreshProvenance()
	return s.ActiveQuote()
}

// IsLive reports whether the active quote currently counts as live data.
func (s *Session) IsLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote != nil && s.quote.IsLiveData
}

// CreateAlert validates and registers a fire-once rule bound to the active
// quote's price and ticker.
func (s *Session) CreateAlert(direction model.Direction, percentage float64) (*model.AlertRule, error) {
	s.mu.Lock()
	if s.quote == nil {
		s.mu.Unlock()
		return nil, model.ErrNoActiveQuote
	}
	symbol := s.ticker
	base := s.quote.CurrentPrice
	s.mu.Unlock()

	rule, err := alert.NewRule(symbol, direction, percentage, base)
	if err != nil {
		return nil, err
	}
	if err := s.alerts.Add(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// RemoveAlert removes a rule by ID prefix. Returns nil when nothing matched.
func (s *Session) RemoveAlert(idPrefix string) (*model.AlertRule, error) {
	return s.alerts.Remove(idPrefix)
}

// Alerts returns all rules, active and dormant.
func (s *Session) Alerts() []*model.AlertRule {
	return s.alerts.All()
}

// evaluateLocked runs the fire-once alert evaluation for the active ticker.
// Caller holds s.mu.
func (s *Session) evaluateLocked() []*model.AlertRule {
	if s.quote == nil {
		return nil
	}
	fired, err := s.alerts.Evaluate(s.ticker, s.quote.CurrentPrice)
	if err != nil {
		log.Printf("[WARN] persist alert rules after evaluation: %v", err)
	}
	return fired
}

// fire invokes the alert handler outside the session lock. Delivery failure
// is the collaborator's problem; the rules are already consumed.
func (s *Session) fire(fired []*model.AlertRule, price float64) {
	if len(fired) == 0 {
		return
	}
	s.mu.Lock()
	h := s.onFire
	s.mu.Unlock()
	if h == nil {
		return
	}
	for _, r := range fired {
		h(r, price)
	}
}
