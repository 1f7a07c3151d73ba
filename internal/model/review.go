package model

import "time"

// ReviewResult records whether yesterday's oversold signal on a ticker
// would have hit today's target. Reporting only; no action on misses.
type ReviewResult struct {
	Symbol    string
	PrevClose float64
	TodayHigh float64
	Target    float64
	Hit       bool
}

// TradeLogRow is the persisted form of a review outcome. Append-only;
// read back in aggregate at the start of each run.
type TradeLogRow struct {
	Date   time.Time
	Symbol string
	Hit    bool
}

// TickerStats is the per-symbol aggregation of the trade log.
type TickerStats struct {
	Symbol  string
	Count   int
	Hits    int
	HitRate float64
}
