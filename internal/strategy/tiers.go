package strategy

import "SignalScout/internal/model"

// Tier thresholds, calibrated against the scorer's weight presets.
const (
	SuperThreshold           = 70.0
	StrongThreshold          = 55.0
	NormalThreshold          = 30.0
	NormalThresholdDefensive = 45.0
)

// ClassifyTier maps (score, regime, flags) to one of the four tiers.
// The earnings veto is absolute: an earnings event within the veto
// window yields NONE regardless of score. At fixed regime and flags the
// mapping is monotonic in score.
func ClassifyTier(score float64, f model.SignalFeatures, ext model.ExternalSignal, regime model.Regime) model.Tier {
	if earningsWithinVeto(ext) {
		return model.TierNone
	}

	normalBar := NormalThreshold
	if regime.Defensive() {
		normalBar = NormalThresholdDefensive
	}

	switch {
	case score >= SuperThreshold && f.IsVolSpike && !regime.Defensive():
		return model.TierSuper
	case score >= StrongThreshold:
		return model.TierStrong
	case score >= normalBar:
		return model.TierNormal
	default:
		return model.TierNone
	}
}
