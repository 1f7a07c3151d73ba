package calculator

import (
	"errors"

	"SignalScout/internal/model"
)

// CalculateMFI computes the Money Flow Index at the latest bar: the
// typical-price-weighted volume flow ratio in the same 100-100/(1+x) form
// as RSI. Requires at least period+1 bars. When the window has no
// negative flow the MFI is exactly 100.
func CalculateMFI(bars []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period+1 {
		return 0, ErrNotEnoughData
	}

	typical := func(b model.OHLCV) float64 { return (b.High + b.Low + b.Close) / 3.0 }

	var posFlow, negFlow float64
	for i := len(bars) - period; i < len(bars); i++ {
		tp := typical(bars[i])
		prevTP := typical(bars[i-1])
		flow := tp * bars[i].Volume
		if tp > prevTP {
			posFlow += flow
		} else if tp < prevTP {
			negFlow += flow
		}
	}

	if negFlow == 0 {
		return 100.0, nil
	}
	ratio := posFlow / negFlow
	return 100.0 - 100.0/(1.0+ratio), nil
}
