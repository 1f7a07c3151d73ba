package strategy

import "SignalScout/internal/model"

// ATR multiple used for stop placement below the entry price.
const stopATRMult = 1.5

// Evaluate runs the scorer and tier classifier for one ticker and
// produces its final per-run record with target and stop prices.
func Evaluate(symbol string, snap *model.IndicatorSnapshot, f model.SignalFeatures, ext model.ExternalSignal, regime model.Regime) *model.ScoredTicker {
	score := Score(f, ext, regime)
	tier := ClassifyTier(score, f, ext, regime)

	stop := snap.CurrentPrice - stopATRMult*snap.ATR
	if stop < 0 {
		stop = 0
	}

	return &model.ScoredTicker{
		Symbol:      symbol,
		Price:       snap.CurrentPrice,
		Features:    f,
		External:    ext,
		Score:       score,
		Tier:        tier,
		TargetPrice: snap.CurrentPrice * regime.TargetMultiplier,
		StopPrice:   stop,
	}
}
