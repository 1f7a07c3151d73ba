package strategy

import "SignalScout/internal/model"

// Weights is one preset of feature weights. Two presets exist: the
// normal set and a more conservative defensive set selected by the
// regime classifier.
type Weights struct {
	Oversold  float64
	MoneyIn   float64
	Turning   float64
	VolSpike  float64
	BBSupport float64
	DropBonus float64
}

var (
	normalWeights = Weights{
		Oversold:  30,
		MoneyIn:   20,
		Turning:   15,
		VolSpike:  10,
		BBSupport: 10,
		DropBonus: 5,
	}
	defensiveWeights = Weights{
		Oversold:  25,
		MoneyIn:   20,
		Turning:   10,
		VolSpike:  5,
		BBSupport: 10,
		DropBonus: 5,
	}
)

// External adjustment values.
const (
	sentimentBullishAdj = 20.0
	sentimentBearishAdj = -20.0
	earningsProximityAdj = -35.0
	analystUpsideAdj     = 12.0
	analystUpsideMinPct  = 15.0
	dropRateBonusPct     = 15.0

	// EarningsVetoDays is the window (inclusive) inside which an
	// upcoming earnings event hard-excludes a ticker.
	EarningsVetoDays = 7
)

// WeightsFor returns the weight preset for the given regime.
func WeightsFor(regime model.Regime) Weights {
	if regime.Defensive() {
		return defensiveWeights
	}
	return normalWeights
}

// Score combines features and external signals into one plain number.
// No normalization; tier thresholds are calibrated against these weights.
func Score(f model.SignalFeatures, ext model.ExternalSignal, regime model.Regime) float64 {
	w := WeightsFor(regime)

	score := 0.0
	if f.IsOversold {
		score += w.Oversold
	}
	if f.IsMoneyIn {
		score += w.MoneyIn
	}
	if f.IsTurning {
		score += w.Turning
	}
	if f.IsVolSpike {
		score += w.VolSpike
	}
	if f.IsBBSupport {
		score += w.BBSupport
	}
	if f.DropRate >= dropRateBonusPct {
		score += w.DropBonus
	}

	switch ext.Sentiment {
	case model.SentimentBullish:
		score += sentimentBullishAdj
	case model.SentimentBearish:
		score += sentimentBearishAdj
	}
	if earningsWithinVeto(ext) {
		score += earningsProximityAdj
	}
	if ext.AnalystUpsidePct != nil && *ext.AnalystUpsidePct > analystUpsideMinPct {
		score += analystUpsideAdj
	}

	return score
}

func earningsWithinVeto(ext model.ExternalSignal) bool {
	return ext.EarningsDaysUntil != nil &&
		*ext.EarningsDaysUntil >= 0 && *ext.EarningsDaysUntil <= EarningsVetoDays
}
