package calculator

import (
	"errors"
	"math"

	"SignalScout/internal/model"
)

// CalculateTrailingHigh scans the most recent `window` bars and returns
// the highest high. Shorter series use all available bars.
func CalculateTrailingHigh(bars []model.OHLCV, window int) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	n := len(bars)
	start := n - window
	if start < 0 {
		start = 0
	}
	high := math.Inf(-1)
	for i := start; i < n; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
	}
	return high, nil
}

// CalculateDropRate returns the percentage the current price sits below
// the trailing high (0 when at or above it).
func CalculateDropRate(current, trailingHigh float64) float64 {
	if trailingHigh <= 0 || current >= trailingHigh {
		return 0
	}
	return (trailingHigh - current) / trailingHigh * 100.0
}
