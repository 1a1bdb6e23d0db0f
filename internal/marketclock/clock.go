package marketclock

import "time"

// Phase is the trading-session phase of the exchange at a point in time.
type Phase string

const (
	PhaseOpen          Phase = "open"
	PhasePreMarket     Phase = "pre-market"
	PhaseAfterHours    Phase = "after-hours"
	PhaseClosedWeekday Phase = "closed-weekday"
	PhaseClosedWeekend Phase = "closed-weekend"
)

// Session boundaries in minutes since local midnight (US equities, ET).
const (
	preMarketStart = 4 * 60
	regularOpen    = 9*60 + 30
	regularClose   = 16 * 60
	afterHoursEnd  = 20 * 60
)

// Clock converts wall-clock time into a trading-session phase for a fixed
// exchange timezone. The civil-time conversion absorbs DST shifts, so the
// session boundaries stay fixed in local time year round.
type Clock struct {
	loc *time.Location
}

// NewClock loads the exchange timezone. Falls back to a fixed UTC-5 zone if
// the tz database is unavailable on the host.
func NewClock() *Clock {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.FixedZone("EST", -5*3600)
	}
	return &Clock{loc: loc}
}

// Location returns the exchange timezone.
func (c *Clock) Location() *time.Location { return c.loc }

// PhaseAt returns the trading-session phase at time t.
func (c *Clock) PhaseAt(t time.Time) Phase {
	local := t.In(c.loc)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return PhaseClosedWeekend
	}
	m := local.Hour()*60 + local.Minute()
	switch {
	case m < preMarketStart:
		return PhaseClosedWeekday
	case m < regularOpen:
		return PhasePreMarket
	case m < regularClose:
		return PhaseOpen
	case m < afterHoursEnd:
		return PhaseAfterHours
	default:
		return PhaseClosedWeekday
	}
}

// PhaseInfo carries display framing for a phase.
type PhaseInfo struct {
	Label        string
	NextBoundary string
}

// Describe returns a display label and a description of the next session
// boundary for the given phase.
func Describe(phase Phase) PhaseInfo {
	switch phase {
	case PhaseOpen:
		return PhaseInfo{Label: "盘中交易", NextBoundary: "16:00 收盘"}
	case PhasePreMarket:
		return PhaseInfo{Label: "盘前交易", NextBoundary: "09:30 开盘"}
	case PhaseAfterHours:
		return PhaseInfo{Label: "盘后交易", NextBoundary: "20:00 盘后结束"}
	case PhaseClosedWeekend:
		return PhaseInfo{Label: "周末休市", NextBoundary: "周一 09:30 开盘"}
	default:
		return PhaseInfo{Label: "已休市", NextBoundary: "04:00 盘前开始"}
	}
}

// NextOpen returns the next regular-session open after t. Offsets: one day
// normally, two days from Saturday, one day from Sunday, three days from a
// Friday evaluated at or after the close.
func (c *Clock) NextOpen(t time.Time) time.Time {
	local := t.In(c.loc)
	days := 1
	switch local.Weekday() {
	case time.Saturday:
		days = 2
	case time.Sunday:
		days = 1
	case time.Friday:
		if local.Hour()*60+local.Minute() >= regularClose {
			days = 3
		}
	}
	next := local.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 9, 30, 0, 0, c.loc)
}
