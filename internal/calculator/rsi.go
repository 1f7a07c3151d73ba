package calculator

import (
	"errors"

	"SignalScout/internal/model"
)

// CalculateRSI computes the RSI at the latest bar using simple rolling
// means of gains and losses over `period` changes (not Wilder smoothing).
// Requires at least period+1 bars. When the window has no losses the RSI
// is exactly 100, never NaN.
func CalculateRSI(bars []model.OHLCV, period int) (float64, error) {
	return rsiOfCloses(ExtractCloses(bars), period)
}

// CalculatePrevRSI computes the RSI as of the previous session, used by
// the backtest review.
func CalculatePrevRSI(bars []model.OHLCV, period int) (float64, error) {
	if len(bars) < 2 {
		return 0, ErrNotEnoughData
	}
	return rsiOfCloses(ExtractCloses(bars[:len(bars)-1]), period)
}

func rsiOfCloses(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return 0, ErrNotEnoughData
	}

	var avgGain, avgLoss float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
