package feature

import (
	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// Thresholds are the fixed contract for deriving signal features. The
// defaults are the canonical set; deviations belong in config, not code.
type Thresholds struct {
	OversoldRSI      float64 // RSI below this is oversold
	MoneyInMFI       float64 // MFI below this means money flowing in
	VolSpikeMult     float64 // volume above this multiple of 5-bar average
	BBSupportMult    float64 // close within this multiple of the lower band
	DropRateWindow   int     // trailing-high window in bars
	DropRateBonusPct float64 // drop rate at or above this earns the score bonus
}

// DefaultThresholds is the canonical threshold set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OversoldRSI:      33,
		MoneyInMFI:       35,
		VolSpikeMult:     1.5,
		BBSupportMult:    1.02,
		DropRateWindow:   40,
		DropRateBonusPct: 15,
	}
}

// Extract derives the signal features for the latest bar from the
// indicator snapshot and the raw series. Pure: same inputs, same output.
func Extract(snap *model.IndicatorSnapshot, bars []model.OHLCV, th Thresholds) model.SignalFeatures {
	f := model.SignalFeatures{}

	bbSupport := snap.BBLow > 0 && snap.CurrentPrice <= snap.BBLow*th.BBSupportMult
	f.IsBBSupport = bbSupport
	f.IsOversold = snap.RSI < th.OversoldRSI || bbSupport
	f.IsMoneyIn = snap.MFI < th.MoneyInMFI
	f.IsTurning = snap.MACD > snap.Signal

	// Zero average volume means the ratio is infinite; treat as not
	// triggered rather than a spike.
	if snap.AvgVolume5 > 0 && len(bars) > 0 {
		f.IsVolSpike = bars[len(bars)-1].Volume > snap.AvgVolume5*th.VolSpikeMult
	}

	f.DropRate = calculator.CalculateDropRate(snap.CurrentPrice, snap.High40)
	return f
}
