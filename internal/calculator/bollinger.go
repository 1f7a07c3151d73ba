package calculator

import (
	"errors"
	"math"

	"SignalScout/internal/model"
)

// CalculateBollinger computes the 20-style Bollinger envelope at the
// latest bar: simple moving average plus/minus `mult` sample standard
// deviations over `period` closes.
func CalculateBollinger(bars []model.OHLCV, period int, mult float64) (ma, std, low, high float64, err error) {
	if period <= 1 {
		return 0, 0, 0, 0, errors.New("period must be greater than 1")
	}
	closes := ExtractCloses(bars)
	if len(closes) < period {
		return 0, 0, 0, 0, ErrNotEnoughData
	}

	window := closes[len(closes)-period:]
	sum := 0.0
	for _, c := range window {
		sum += c
	}
	ma = sum / float64(period)

	sumSq := 0.0
	for _, c := range window {
		d := c - ma
		sumSq += d * d
	}
	std = math.Sqrt(sumSq / float64(period-1))

	return ma, std, ma - mult*std, ma + mult*std, nil
}
