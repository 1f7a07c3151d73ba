package strategy

import (
	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// CheckTargetHit reports whether today's high reached the target implied
// by yesterday's close. Deterministic given its three inputs.
func CheckTargetHit(prevClose, todayHigh, targetMult float64) bool {
	return todayHigh >= prevClose*targetMult
}

// ReviewPrevSignal checks whether the previous session flagged this
// ticker oversold and, if so, whether today's session hit the target.
// The second return is false when no review applies (previous RSI not
// oversold, or too little data).
func ReviewPrevSignal(series *model.PriceSeries, oversoldRSI float64, regime model.Regime, rsiPeriod int) (model.ReviewResult, bool) {
	if series.Len() < 2 {
		return model.ReviewResult{}, false
	}
	prevRSI, err := calculator.CalculatePrevRSI(series.Bars, rsiPeriod)
	if err != nil || prevRSI >= oversoldRSI {
		return model.ReviewResult{}, false
	}

	prevClose := series.Prev().Close
	todayHigh := series.Last().High
	target := prevClose * regime.TargetMultiplier
	return model.ReviewResult{
		Symbol:    series.Symbol,
		PrevClose: prevClose,
		TodayHigh: todayHigh,
		Target:    target,
		Hit:       CheckTargetHit(prevClose, todayHigh, regime.TargetMultiplier),
	}, true
}
