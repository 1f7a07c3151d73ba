package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw daily price data for one ticker.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. Callers must check Len first.
func (s *PriceSeries) Last() OHLCV { return s.Bars[len(s.Bars)-1] }

// Prev returns the second-to-last bar.
func (s *PriceSeries) Prev() OHLCV { return s.Bars[len(s.Bars)-2] }

// MinBars is the shortest series the pipeline will analyze. The longest
// indicator lookback is the MACD slow EMA (26 periods), with some headroom
// so the signal line has history behind it.
const MinBars = 30
