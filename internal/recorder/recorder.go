package recorder

import "SignalScout/internal/model"

// ScanSnapshot holds the per-run summary persisted after each scan.
type ScanSnapshot struct {
	Regime       model.Regime
	Analyzed     int
	Skipped      int
	SuperCount   int
	StrongCount  int
	NormalCount  int
	ReviewHits   int
	ReviewTotal  int
	OrdersPlaced int
}

// Recorder persists the append-only trade log and scan history. Review
// rows are written once per run, after all per-ticker processing.
type Recorder interface {
	RecordReview(row *model.TradeLogRow) error
	RecordScan(snap *ScanSnapshot) error
	// TickerStats aggregates the full trade log per symbol. The
	// aggregation is recomputed each run and is order-independent.
	TickerStats() (map[string]model.TickerStats, error)
	Close() error
}

// Exclusion policy: a ticker with enough history and a chronically low
// hit rate is dropped from the scan universe.
const (
	ExclusionMinReviews = 5
	ExclusionMinHitRate = 0.5
)

// Exclusions derives the excluded-symbol set from aggregated stats.
// Pure function; the log itself is never mutated.
func Exclusions(stats map[string]model.TickerStats) map[string]bool {
	excluded := make(map[string]bool)
	for symbol, s := range stats {
		if s.Count >= ExclusionMinReviews && s.HitRate < ExclusionMinHitRate {
			excluded[symbol] = true
		}
	}
	return excluded
}
