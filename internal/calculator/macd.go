package calculator

import (
	"errors"

	"SignalScout/internal/model"
)

// CalculateEMA computes the full exponential moving average series,
// seeded at the first value so every index is defined (the rolling-window
// "undefined" rule applies only to simple means; the exponential series
// converges from the seed).
func CalculateEMA(values []float64, period int) []float64 {
	ema := make([]float64, len(values))
	if len(values) == 0 {
		return ema
	}
	k := 2.0 / (float64(period) + 1.0)
	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1.0-k)
	}
	return ema
}

// CalculateMACD returns the MACD line (EMA12 - EMA26) and its signal line
// (EMA9 of MACD) at the latest bar. Requires at least `slow` bars so the
// slow EMA has a full lookback behind it.
func CalculateMACD(bars []model.OHLCV, fast, slow, signal int) (macd, sig float64, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return 0, 0, errors.New("periods must be positive")
	}
	if fast >= slow {
		return 0, 0, errors.New("fast period must be shorter than slow")
	}
	closes := ExtractCloses(bars)
	if len(closes) < slow {
		return 0, 0, ErrNotEnoughData
	}

	emaFast := CalculateEMA(closes, fast)
	emaSlow := CalculateEMA(closes, slow)

	macdSeries := make([]float64, len(closes))
	for i := range closes {
		macdSeries[i] = emaFast[i] - emaSlow[i]
	}
	sigSeries := CalculateEMA(macdSeries, signal)

	n := len(closes) - 1
	return macdSeries[n], sigSeries[n], nil
}
