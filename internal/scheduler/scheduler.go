// Package scheduler drives periodic re-acquisition of the active quote. The
// refresh cadence adapts to the trading-session phase on every tick, so an
// interval chosen at start time never goes stale.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
	"TickerSentinel/internal/notifier"
	"TickerSentinel/internal/quote"
	"TickerSentinel/internal/recorder"
	"TickerSentinel/internal/session"
)

// Scheduler is a two-state machine (Idle <-> Running) owning at most one
// outstanding timer. Starting while already running cancels the prior timer
// first, so duplicate timers can never leak.
type Scheduler struct {
	ctx      context.Context
	session  *session.Session
	acquirer *quote.Acquirer
	clock    *marketclock.Clock
	notifier notifier.Interface
	recorder recorder.Recorder

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	rearm   chan struct{}
}

// NewScheduler creates an idle Scheduler.
func NewScheduler(ctx context.Context, sess *session.Session, acq *quote.Acquirer, clock *marketclock.Clock, n notifier.Interface, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		ctx:      ctx,
		session:  sess,
		acquirer: acq,
		clock:    clock,
		notifier: n,
		recorder: rec,
	}
}

// Start arms the refresh timer. It requires an active ticker and replaces any
// prior timer.
func (s *Scheduler) Start() error {
	if s.session.ActiveTicker() == "" {
		return model.ErrNoActiveTicker
	}

	s.mu.Lock()
	if s.running {
		close(s.stopCh)
	}
	s.running = true
	stopCh := make(chan struct{})
	rearm := make(chan struct{}, 1)
	s.stopCh = stopCh
	s.rearm = rearm
	s.mu.Unlock()

	interval := EffectiveInterval(s.clock.PhaseAt(time.Now()), s.session.BaseInterval())
	log.Printf("[INFO] refresh scheduler started, first tick in %v", interval)
	go s.loop(stopCh, rearm, interval)
	return nil
}

// Stop cancels the timer. Idempotent; a no-op when already idle. An
// acquisition already in flight is not cancelled: its result still applies
// under the generation token, then the loop exits without re-arming.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	log.Println("[INFO] refresh scheduler stopped")
}

// Running reports whether the scheduler is in the Running state.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetVisible implements the visibility collaborator contract: a hidden
// signal stops a running scheduler; becoming visible never auto-resumes.
// Resumption is an explicit user action.
func (s *Scheduler) SetVisible(visible bool) {
	if !visible {
		s.Stop()
	}
}

// SetBaseInterval updates the user's base interval and, while running,
// re-arms the timer with the new effective interval immediately.
func (s *Scheduler) SetBaseInterval(seconds int) error {
	if err := s.session.SetBaseInterval(seconds); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		select {
		case s.rearm <- struct{}{}:
		default:
		}
	}
	return nil
}

func (s *Scheduler) loop(stopCh <-chan struct{}, rearm <-chan struct{}, first time.Duration) {
	timer := time.NewTimer(first)
	defer timer.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-stopCh:
			return
		case <-rearm:
			interval := s.nextInterval()
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(interval)
			log.Printf("[INFO] refresh interval re-armed to %v", interval)
		case <-timer.C:
			s.tick()
			select {
			case <-stopCh:
				return
			default:
			}
			timer.Reset(s.nextInterval())
		}
	}
}

func (s *Scheduler) nextInterval() time.Duration {
	return EffectiveInterval(s.clock.PhaseAt(time.Now()), s.session.BaseInterval())
}

// tick refreshes the active quote once: the network path for live
// provenance, the random walk for synthetic. Refresh failure is a silent
// no-op that only ages the provenance flag.
func (s *Scheduler) tick() {
	ticker := s.session.ActiveTicker()
	if ticker == "" {
		return
	}
	gen := s.session.Generation()
	phase := s.clock.PhaseAt(time.Now())

	if s.session.IsLive() {
		if price, ok := s.acquirer.Refresh(s.ctx, ticker); ok {
			if !s.session.ApplyRefreshPrice(gen, price) {
				log.Printf("[INFO] discarding stale refresh for %s", ticker)
			}
		} else {
			s.session.RefreshProvenance()
		}
		return
	}
	s.session.WalkTick(gen, phase)
}
