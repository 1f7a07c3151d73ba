package strategy

import "SignalScout/internal/model"

// Regime trigger thresholds. Crossing any one of them flips the run into
// defensive mode.
const (
	BreadthDefensive    = 0.6  // fraction of universe below SMA(20)
	VolatilityDefensive = 24.0 // VIX-style proxy level
	IndexDropDefensive  = -1.5 // broad index single-day return, percent

	TargetMultNormal    = 1.025
	TargetMultDefensive = 1.012
)

// BreadthCounter accumulates the below-SMA(20) count across the universe
// during the first pass of a run.
type BreadthCounter struct {
	below int
	total int
}

// Observe records one analyzed ticker.
func (b *BreadthCounter) Observe(belowMA20 bool) {
	b.total++
	if belowMA20 {
		b.below++
	}
}

// Total returns how many tickers were observed.
func (b *BreadthCounter) Total() int { return b.total }

// Ratio returns the fraction of observed tickers trading below their
// 20-period average. Zero when nothing was observed.
func (b *BreadthCounter) Ratio() float64 {
	if b.total == 0 {
		return 0
	}
	return float64(b.below) / float64(b.total)
}

// ClassifyRegime selects the operating mode for the run. Defensive when
// breadth is weak, volatility is elevated, or the broad index dropped
// hard in a single session; normal otherwise.
func ClassifyRegime(breadthRatio, volatilityIndex, indexDayReturn float64) model.Regime {
	r := model.Regime{
		Mode:             model.RegimeNormal,
		BreadthRatio:     breadthRatio,
		VolatilityIndex:  volatilityIndex,
		IndexDayReturn:   indexDayReturn,
		TargetMultiplier: TargetMultNormal,
	}
	if breadthRatio > BreadthDefensive ||
		volatilityIndex > VolatilityDefensive ||
		indexDayReturn < IndexDropDefensive {
		r.Mode = model.RegimeDefensive
		r.TargetMultiplier = TargetMultDefensive
	}
	return r
}
