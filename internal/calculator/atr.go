package calculator

import (
	"errors"
	"math"

	"SignalScout/internal/model"
)

// CalculateATR computes the Average True Range at the latest bar as the
// simple rolling mean of the last `period` true ranges. Requires at
// least period+1 bars since a true range needs the prior close.
func CalculateATR(bars []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return 0, ErrNotEnoughData
	}

	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		hl := bars[i].High - bars[i].Low
		hc := math.Abs(bars[i].High - bars[i-1].Close)
		lc := math.Abs(bars[i].Low - bars[i-1].Close)
		tr := hl
		if hc > tr {
			tr = hc
		}
		if lc > tr {
			tr = lc
		}
		sum += tr
	}
	return sum / float64(period), nil
}
