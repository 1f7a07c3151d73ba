package recorder

import "SignalScout/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not
// configured. Its trade log is always empty, so nothing gets excluded.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReview(_ *model.TradeLogRow) error { return nil }
func (n *NoopRecorder) RecordScan(_ *ScanSnapshot) error        { return nil }
func (n *NoopRecorder) TickerStats() (map[string]model.TickerStats, error) {
	return map[string]model.TickerStats{}, nil
}
func (n *NoopRecorder) Close() error { return nil }
