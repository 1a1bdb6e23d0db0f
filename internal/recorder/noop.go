package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
// Without a meta store, provenance freshness simply does not survive restarts.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *QuoteSnapshot) error { return nil }
func (n *NoopRecorder) RecordAlert(_ *AlertEvent) error       { return nil }
func (n *NoopRecorder) PutMeta(_, _ string) error             { return nil }
func (n *NoopRecorder) GetMeta(_ string) (string, error)      { return "", nil }
func (n *NoopRecorder) Close() error                          { return nil }
