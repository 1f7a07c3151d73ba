package strategy

import (
	"testing"

	"SignalScout/internal/model"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }

func normalRegime() model.Regime {
	return ClassifyRegime(0.3, 18, 0.2)
}

func defensiveRegime() model.Regime {
	return ClassifyRegime(0.65, 18, 0.2)
}

// Oversold bounce setup: RSI below 33, money flowing in, bullish MACD
// cross, doubled volume.
func bounceFeatures() model.SignalFeatures {
	return model.SignalFeatures{
		IsOversold: true,
		IsMoneyIn:  true,
		IsTurning:  true,
		IsVolSpike: true,
	}
}

func TestEvaluate_SuperTier(t *testing.T) {
	snap := &model.IndicatorSnapshot{CurrentPrice: 100, RSI: 28, MFI: 30, ATR: 2}
	st := Evaluate("NVDA", snap, bounceFeatures(), model.ExternalSignal{Sentiment: model.SentimentNeutral}, normalRegime())

	if st.Score != 75 {
		t.Fatalf("expected score 75 for full bounce setup, got %v", st.Score)
	}
	if st.Tier != model.TierSuper {
		t.Errorf("expected SUPER, got %s", st.Tier)
	}
	if st.TargetPrice != 100*TargetMultNormal {
		t.Errorf("expected target %.2f, got %.2f", 100*TargetMultNormal, st.TargetPrice)
	}
	if st.StopPrice != 97 {
		t.Errorf("expected stop 97 (1.5 ATR below), got %.2f", st.StopPrice)
	}
}

func TestEvaluate_EarningsVetoIsAbsolute(t *testing.T) {
	snap := &model.IndicatorSnapshot{CurrentPrice: 100, ATR: 2}
	ext := model.ExternalSignal{
		Sentiment:         model.SentimentBullish,
		EarningsDaysUntil: intPtr(3),
	}
	st := Evaluate("TSLA", snap, bounceFeatures(), ext, normalRegime())
	if st.Tier != model.TierNone {
		t.Errorf("earnings in 3 days must veto to NONE, got %s", st.Tier)
	}

	// Outside the window the veto lifts.
	ext.EarningsDaysUntil = intPtr(EarningsVetoDays + 1)
	st = Evaluate("TSLA", snap, bounceFeatures(), ext, normalRegime())
	if st.Tier == model.TierNone {
		t.Errorf("earnings beyond the veto window must not exclude, got %s", st.Tier)
	}
}

func TestEvaluate_SuperRequiresVolSpikeAndNormalRegime(t *testing.T) {
	f := bounceFeatures()
	f.IsBBSupport = true // push score well past the super threshold
	ext := model.ExternalSignal{Sentiment: model.SentimentBullish}

	noSpike := f
	noSpike.IsVolSpike = false
	st := Evaluate("AMD", &model.IndicatorSnapshot{CurrentPrice: 50}, noSpike, ext, normalRegime())
	if st.Tier != model.TierStrong {
		t.Errorf("high score without volume spike caps at STRONG, got %s", st.Tier)
	}

	st = Evaluate("AMD", &model.IndicatorSnapshot{CurrentPrice: 50}, f, ext, defensiveRegime())
	if st.Tier == model.TierSuper {
		t.Error("defensive regime must never yield SUPER")
	}
}

func TestScore_ExternalAdjustments(t *testing.T) {
	f := model.SignalFeatures{IsOversold: true}
	regime := normalRegime()
	base := Score(f, model.ExternalSignal{Sentiment: model.SentimentNeutral}, regime)

	bull := Score(f, model.ExternalSignal{Sentiment: model.SentimentBullish}, regime)
	if bull != base+20 {
		t.Errorf("bullish sentiment should add 20, got %v vs base %v", bull, base)
	}
	bear := Score(f, model.ExternalSignal{Sentiment: model.SentimentBearish}, regime)
	if bear != base-20 {
		t.Errorf("bearish sentiment should subtract 20, got %v vs base %v", bear, base)
	}
	upside := Score(f, model.ExternalSignal{Sentiment: model.SentimentNeutral, AnalystUpsidePct: floatPtr(22)}, regime)
	if upside != base+12 {
		t.Errorf("analyst upside above 15%% should add 12, got %v vs base %v", upside, base)
	}
	earnings := Score(f, model.ExternalSignal{Sentiment: model.SentimentNeutral, EarningsDaysUntil: intPtr(5)}, regime)
	if earnings != base-35 {
		t.Errorf("earnings proximity should subtract 35, got %v vs base %v", earnings, base)
	}
}

func TestClassifyTier_MonotonicInScore(t *testing.T) {
	f := model.SignalFeatures{IsVolSpike: true}
	ext := model.ExternalSignal{Sentiment: model.SentimentNeutral}
	for _, regime := range []model.Regime{normalRegime(), defensiveRegime()} {
		prev := model.TierNone
		for score := -50.0; score <= 120; score += 0.5 {
			tier := ClassifyTier(score, f, ext, regime)
			if tier < prev {
				t.Fatalf("tier dropped from %s to %s as score rose to %v (%s regime)",
					prev, tier, score, regime.Mode)
			}
			prev = tier
		}
	}
}

func TestClassifyTier_DefensiveRaisesNormalBar(t *testing.T) {
	f := model.SignalFeatures{}
	ext := model.ExternalSignal{Sentiment: model.SentimentNeutral}

	if got := ClassifyTier(40, f, ext, normalRegime()); got != model.TierNormal {
		t.Errorf("score 40 in normal regime should be NORMAL, got %s", got)
	}
	if got := ClassifyTier(40, f, ext, defensiveRegime()); got != model.TierNone {
		t.Errorf("score 40 in defensive regime should be NONE (bar raised to 45), got %s", got)
	}
	if got := ClassifyTier(45, f, ext, defensiveRegime()); got != model.TierNormal {
		t.Errorf("score 45 in defensive regime should be NORMAL, got %s", got)
	}
}

func TestClassifyRegime_BreadthBoundary(t *testing.T) {
	tests := []struct {
		breadth float64
		vix     float64
		idxRet  float64
		want    model.RegimeMode
	}{
		{0.59, 18, 0.0, model.RegimeNormal},
		{0.60, 18, 0.0, model.RegimeNormal}, // strictly greater than 0.6 flips
		{0.61, 18, 0.0, model.RegimeDefensive},
		{0.65, 18, 0.0, model.RegimeDefensive},
		{0.30, 25, 0.0, model.RegimeDefensive}, // volatility proxy alone
		{0.30, 18, -2.0, model.RegimeDefensive}, // index drop alone
		{0.30, 18, -1.0, model.RegimeNormal},
	}
	for _, tt := range tests {
		r := ClassifyRegime(tt.breadth, tt.vix, tt.idxRet)
		if r.Mode != tt.want {
			t.Errorf("breadth=%v vix=%v idx=%v: expected %s, got %s",
				tt.breadth, tt.vix, tt.idxRet, tt.want, r.Mode)
		}
	}
}

func TestClassifyRegime_TargetMultipliers(t *testing.T) {
	if m := normalRegime().TargetMultiplier; m != TargetMultNormal {
		t.Errorf("expected normal target %v, got %v", TargetMultNormal, m)
	}
	if m := defensiveRegime().TargetMultiplier; m != TargetMultDefensive {
		t.Errorf("expected defensive target %v, got %v", TargetMultDefensive, m)
	}
}

func TestCheckTargetHit(t *testing.T) {
	// prev_close=100, multiplier=1.025 requires a 102.5 high; 101.5 misses.
	if CheckTargetHit(100, 101.5, 1.025) {
		t.Error("101.5 high must miss a 102.5 target")
	}
	if !CheckTargetHit(100, 102.5, 1.025) {
		t.Error("102.5 high must hit a 102.5 target exactly")
	}
}
