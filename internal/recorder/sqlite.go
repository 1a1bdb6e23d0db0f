package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists snapshots, alert events and key-value state to a
// SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the watcher's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			price        REAL,
			daily_change REAL,
			daily_pct    REAL,
			day_low      REAL,
			day_high     REAL,
			week_low_52  REAL,
			week_high_52 REAL,
			volume       REAL,
			phase        TEXT,
			is_live      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON quote_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON quote_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS alert_events (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			direction    TEXT,
			percentage   REAL,
			base_price   REAL,
			target_price REAL,
			fired_price  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alert_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(snap *QuoteSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	live := 0
	if snap.IsLive {
		live = 1
	}
	_, err := r.db.Exec(`INSERT INTO quote_snapshots
		(timestamp, symbol, price, daily_change, daily_pct,
		 day_low, day_high, week_low_52, week_high_52, volume, phase, is_live)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, snap.Price, snap.DailyChange, snap.DailyChangePercent,
		snap.DayLow, snap.DayHigh, snap.WeekLow52, snap.WeekHigh52,
		snap.Volume, snap.Phase, live,
	)
	return err
}

func (r *SQLiteRecorder) RecordAlert(evt *AlertEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alert_events
		(timestamp, symbol, direction, percentage, base_price, target_price, fired_price)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.Direction, evt.Percentage,
		evt.BasePrice, evt.TargetPrice, evt.FiredPrice,
	)
	return err
}

func (r *SQLiteRecorder) PutMeta(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (r *SQLiteRecorder) GetMeta(key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var value string
	err := r.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
