package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"TickerSentinel/internal/calculator"
	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/notifier"
)

// Reporter pushes a market-close summary of the active quote on a cron
// schedule and persists an end-of-day snapshot. Cron runs in the exchange
// timezone so the schedule tracks DST with the session boundaries.
type Reporter struct {
	cron      *cron.Cron
	scheduler *Scheduler
}

// NewReporter creates a Reporter bound to the scheduler's session and
// collaborators.
func NewReporter(s *Scheduler) *Reporter {
	return &Reporter{
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(s.clock.Location())),
		scheduler: s,
	}
}

// Register adds the daily close report task. The default schedule fires a
// few minutes after the regular close, Monday through Friday.
func (r *Reporter) Register(closeCron string) error {
	if closeCron == "" {
		closeCron = "0 10 16 * * 1-5"
	}
	if _, err := r.cron.AddFunc(closeCron, r.dailyReport); err != nil {
		return fmt.Errorf("register daily report: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Reporter) Start() {
	r.cron.Start()
	log.Println("[INFO] daily reporter started")
}

// Stop stops the cron scheduler gracefully.
func (r *Reporter) Stop() {
	r.cron.Stop()
	log.Println("[INFO] daily reporter stopped")
}

func (r *Reporter) dailyReport() {
	s := r.scheduler
	q := s.session.DisplayQuote()
	if q == nil {
		log.Println("[INFO] daily report skipped: no active quote")
		return
	}

	s.recordSnapshot(q)

	stats := calculator.QuoteStats(q)
	info := marketclock.Describe(s.clock.PhaseAt(time.Now()))
	active := 0
	for _, rule := range s.session.Alerts() {
		if rule.Symbol == q.Ticker {
			active++
		}
	}
	body := notifier.FormatDailySummary(q, stats, info, active)
	nextOpen := s.clock.NextOpen(time.Now())
	body += fmt.Sprintf("\n下次开盘: %s", nextOpen.Format("01-02 15:04"))
	title := fmt.Sprintf("📅 %s 收盘日报", q.Ticker)
	if err := s.notifier.Notify(s.ctx, title, body); err != nil {
		log.Printf("[ERROR] send daily report: %v", err)
	}
}
