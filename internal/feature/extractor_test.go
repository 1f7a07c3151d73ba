package feature

import (
	"testing"

	"SignalScout/internal/model"
)

func TestExtract_OversoldByRSI(t *testing.T) {
	snap := &model.IndicatorSnapshot{
		CurrentPrice: 100, RSI: 28, MFI: 50, MACD: -1, Signal: 0,
		BBLow: 90, AvgVolume5: 1000, High40: 120,
	}
	bars := []model.OHLCV{{Close: 100, Volume: 1000}}
	f := Extract(snap, bars, DefaultThresholds())
	if !f.IsOversold {
		t.Error("expected oversold at RSI=28")
	}
	if f.IsBBSupport {
		t.Error("price well above lower band, no BB support expected")
	}
	if f.IsMoneyIn {
		t.Error("MFI=50 should not trigger money-in")
	}
	if f.IsTurning {
		t.Error("MACD below signal should not be turning")
	}
}

func TestExtract_OversoldByBollingerSupport(t *testing.T) {
	snap := &model.IndicatorSnapshot{
		CurrentPrice: 91, RSI: 60, MFI: 50,
		BBLow: 90, AvgVolume5: 1000, High40: 120,
	}
	bars := []model.OHLCV{{Close: 91, Volume: 1000}}
	f := Extract(snap, bars, DefaultThresholds())
	if !f.IsBBSupport {
		t.Error("expected BB support within 2%% of the lower band")
	}
	if !f.IsOversold {
		t.Error("BB support alone must imply oversold")
	}
}

func TestExtract_VolumeSpike(t *testing.T) {
	snap := &model.IndicatorSnapshot{CurrentPrice: 100, AvgVolume5: 1000, High40: 100}
	bars := []model.OHLCV{{Close: 100, Volume: 2000}}
	f := Extract(snap, bars, DefaultThresholds())
	if !f.IsVolSpike {
		t.Error("2x average volume must be a spike at 1.5x threshold")
	}

	// Zero average volume: ratio is infinite, treated as not triggered.
	snap.AvgVolume5 = 0
	f = Extract(snap, bars, DefaultThresholds())
	if f.IsVolSpike {
		t.Error("zero average volume must not trigger a spike")
	}
}

func TestExtract_DropRate(t *testing.T) {
	snap := &model.IndicatorSnapshot{CurrentPrice: 80, AvgVolume5: 1, High40: 100}
	f := Extract(snap, []model.OHLCV{{Close: 80, Volume: 1}}, DefaultThresholds())
	if f.DropRate != 20.0 {
		t.Errorf("expected 20%% drop rate, got %v", f.DropRate)
	}
}
