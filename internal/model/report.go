package model

import "time"

// ScanReport is everything one run produced, handed to the formatter
// and the recorder. Tier membership is the only thing reported
// downstream; ScoredTickers are discarded at end of run.
type ScanReport struct {
	RunAt    time.Time
	Regime   Regime
	Analyzed int
	Excluded int

	Super   []*ScoredTicker
	Strong  []*ScoredTicker
	Normal  []*ScoredTicker
	Reviews []ReviewResult
	Skips   []SkipReason
}

// ReviewHits counts how many reviews hit their target.
func (r *ScanReport) ReviewHits() int {
	hits := 0
	for _, rv := range r.Reviews {
		if rv.Hit {
			hits++
		}
	}
	return hits
}

// Orders counts the tickers that carried an order status this run.
func (r *ScanReport) Orders() int {
	n := 0
	for _, st := range r.Super {
		if st.OrderStatus != "" {
			n++
		}
	}
	return n
}
