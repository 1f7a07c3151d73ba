package calculator

import (
	"errors"

	"SignalScout/internal/model"
)

// ErrNotEnoughData is returned when a rolling window has fewer bars than
// its period. Callers must treat the indicator as missing, never as zero.
var ErrNotEnoughData = errors.New("not enough data for calculation")

// CalculateSMA computes the simple moving average of the last `period`
// values.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrNotEnoughData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// CalculateAvgVolume returns the mean volume over the last `period` bars.
func CalculateAvgVolume(bars []model.OHLCV, period int) (float64, error) {
	return CalculateSMA(ExtractVolumes(bars), period)
}

// ExtractCloses returns the close prices of the given bars.
func ExtractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// ExtractVolumes returns the volumes of the given bars.
func ExtractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
