package model

import "errors"

// Validation errors surfaced to the user as transient messages. Acquisition
// failures are never represented here: the acquisition layer always recovers
// to synthetic data and never returns an error.
var (
	ErrInvalidTicker     = errors.New("ticker must not be empty")
	ErrInvalidPercentage = errors.New("percentage outside the allowed range")
	ErrNoActiveQuote     = errors.New("no active quote, search a ticker first")
	ErrNoActiveTicker    = errors.New("no active ticker, search a ticker first")
)
