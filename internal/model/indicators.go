package model

// IndicatorSnapshot holds all technical indicators computed at the latest
// bar of a price series. Recomputed every run, never mutated.
type IndicatorSnapshot struct {
	CurrentPrice float64
	RSI          float64
	MFI          float64
	MACD         float64
	Signal       float64
	MA20         float64
	Std20        float64
	BBLow        float64
	BBHigh       float64
	ATR          float64
	AvgVolume5   float64
	High40       float64 // trailing 40-bar high
}
