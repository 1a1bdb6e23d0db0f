package quote

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"TickerSentinel/internal/model"
)

// SearchTimeout bounds the one network round trip of an on-demand search.
const SearchTimeout = 3 * time.Second

// LastLiveKey is the fixed key under which the last successful live
// acquisition is persisted, as "SYMBOL|RFC3339".
const LastLiveKey = "last_live_acquisition"

// MetaStore is the key-value persistence collaborator. The acquisition layer
// only records the last live-acquisition timestamp and reads it back on
// startup.
type MetaStore interface {
	PutMeta(key, value string) error
	GetMeta(key string) (string, error)
}

// Acquirer resolves tickers to quotes. It never returns an error: known and
// demo tickers are served synthetically by choice, and any network failure
// falls back to the generator silently.
type Acquirer struct {
	fetcher        Fetcher
	gen            *Generator
	meta           MetaStore
	refreshTimeout time.Duration
	now            func() time.Time

	mu       sync.Mutex
	lastLive map[string]time.Time
}

// NewAcquirer wires the acquisition layer. The persisted last-live timestamp,
// if any, seeds the freshness state so provenance survives restarts.
func NewAcquirer(fetcher Fetcher, gen *Generator, meta MetaStore, refreshTimeout time.Duration) *Acquirer {
	if refreshTimeout <= 0 {
		refreshTimeout = 5 * time.Second
	}
	a := &Acquirer{
		fetcher:        fetcher,
		gen:            gen,
		meta:           meta,
		refreshTimeout: refreshTimeout,
		now:            time.Now,
		lastLive:       make(map[string]time.Time),
	}
	a.loadLastLive()
	return a
}

func (a *Acquirer) loadLastLive() {
	if a.meta == nil {
		return
	}
	v, err := a.meta.GetMeta(LastLiveKey)
	if err != nil || v == "" {
		return
	}
	parts := strings.SplitN(v, "|", 2)
	if len(parts) != 2 {
		return
	}
	if t, err := time.Parse(time.RFC3339, parts[1]); err == nil {
		a.lastLive[parts[0]] = t
	}
}

// Acquire resolves a ticker to a usable Quote. Known and demo tickers skip
// the network entirely; this is the preferred path, not a degraded one.
func (a *Acquirer) Acquire(ctx context.Context, ticker string) *model.Quote {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	if symbol == DemoTicker || IsKnownTicker(symbol) {
		return a.gen.Generate(symbol)
	}

	price, prevClose, ok := a.fetchLive(ctx, symbol, SearchTimeout)
	q := a.gen.Generate(symbol)
	if !ok {
		// Silent fallback: the user sees demo framing, never a network error.
		return q
	}
	if prevClose > 0 {
		q.PrevClose = prevClose
	}
	q.SetPrice(price)
	q.IsLiveData = true
	a.recordLive(symbol)
	return q
}

// Refresh performs the network round trip only and returns the fresh price.
// On any failure it reports ok=false so the caller leaves the last known
// quote untouched.
func (a *Acquirer) Refresh(ctx context.Context, ticker string) (float64, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	price, _, ok := a.fetchLive(ctx, symbol, a.refreshTimeout)
	if !ok {
		return 0, false
	}
	a.recordLive(symbol)
	return price, true
}

// fetchLive runs one bounded round trip. A timeout cancels the in-flight
// request rather than abandoning it.
func (a *Acquirer) fetchLive(ctx context.Context, symbol string, timeout time.Duration) (price, prevClose float64, ok bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := a.fetcher.FetchQuote(fetchCtx, symbol)
	if err != nil {
		log.Printf("[WARN] live quote for %s failed, falling back: %v", symbol, err)
		return 0, 0, false
	}
	if payload.Error != nil {
		log.Printf("[WARN] quote endpoint rejected %s: %s %s", symbol, payload.Error.Code, payload.Error.Message)
		return 0, 0, false
	}
	p := payload.Price
	if p <= 0 {
		p = payload.PreviousClose
	}
	if p <= 0 {
		log.Printf("[WARN] non-positive price for %s, falling back", symbol)
		return 0, 0, false
	}
	return p, payload.PreviousClose, true
}

func (a *Acquirer) recordLive(symbol string) {
	now := a.now()
	a.mu.Lock()
	a.lastLive[symbol] = now
	a.mu.Unlock()

	if a.meta == nil {
		return
	}
	value := fmt.Sprintf("%s|%s", symbol, now.Format(time.RFC3339))
	if err := a.meta.PutMeta(LastLiveKey, value); err != nil {
		log.Printf("[WARN] persist last live acquisition: %v", err)
	}
}

// LastLiveAt returns the time of the most recent successful live acquisition
// for the symbol, or a zero time when there was none.
func (a *Acquirer) LastLiveAt(symbol string) time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastLive[strings.ToUpper(symbol)]
}
