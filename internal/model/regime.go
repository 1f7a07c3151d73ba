package model

// RegimeMode is the market-wide operating mode selected per run.
type RegimeMode string

const (
	RegimeNormal    RegimeMode = "NORMAL"
	RegimeDefensive RegimeMode = "DEFENSIVE"
)

// Regime is the output of the regime classifier: the mode plus the
// breadth measurements that produced it and the profit-target multiplier
// that applies to every ticker this run.
type Regime struct {
	Mode             RegimeMode
	BreadthRatio     float64 // fraction of universe trading below SMA(20)
	VolatilityIndex  float64 // VIX-style proxy, 0 when unavailable
	IndexDayReturn   float64 // broad index single-day return, percent
	TargetMultiplier float64
}

// Defensive reports whether the conservative weight set applies.
func (r Regime) Defensive() bool { return r.Mode == RegimeDefensive }
