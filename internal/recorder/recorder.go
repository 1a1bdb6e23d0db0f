package recorder

// QuoteSnapshot is one persisted view of the active quote.
type QuoteSnapshot struct {
	Symbol             string
	Price              float64
	DailyChange        float64
	DailyChangePercent float64
	DayLow             float64
	DayHigh            float64
	WeekLow52          float64
	WeekHigh52         float64
	Volume             float64
	Phase              string
	IsLive             bool
}

// AlertEvent records a fired alert rule.
type AlertEvent struct {
	Symbol      string
	Direction   string
	Percentage  float64
	BasePrice   float64
	TargetPrice float64
	FiredPrice  float64
}

// Recorder persists historical data and the engine's key-value state. The
// meta methods are the key-value persistence collaborator: the engine only
// writes the last successful live-acquisition timestamp under a fixed key
// and reads it back on startup.
type Recorder interface {
	RecordSnapshot(snap *QuoteSnapshot) error
	RecordAlert(evt *AlertEvent) error
	PutMeta(key, value string) error
	GetMeta(key string) (string, error)
	Close() error
}
