package model

// Sentiment is the label returned by the external text classifier.
type Sentiment string

const (
	SentimentBullish Sentiment = "Positive"
	SentimentBearish Sentiment = "Negative"
	SentimentNeutral Sentiment = "Neutral"
)

// Tier is the buy-recommendation bucket assigned per ticker per run.
type Tier int

const (
	TierNone Tier = iota
	TierNormal
	TierStrong
	TierSuper
)

func (t Tier) String() string {
	switch t {
	case TierSuper:
		return "SUPER"
	case TierStrong:
		return "STRONG"
	case TierNormal:
		return "NORMAL"
	default:
		return "NONE"
	}
}

// SignalFeatures are the boolean/numeric flags derived from an
// IndicatorSnapshot and the last few bars. Purely a function of those
// inputs, no hidden state.
type SignalFeatures struct {
	IsOversold  bool
	IsMoneyIn   bool
	IsTurning   bool
	IsVolSpike  bool
	IsBBSupport bool
	DropRate    float64 // percentage below the trailing high
}

// ExternalSignal carries the optional inputs from outside collaborators.
// Nil pointers mean the value is unavailable and must score as zero.
type ExternalSignal struct {
	Sentiment         Sentiment
	EarningsDaysUntil *int
	AnalystUpsidePct  *float64
}

// ScoredTicker is the per-ticker output of the scoring pipeline.
// Created once per run, never mutated afterwards.
type ScoredTicker struct {
	Symbol      string
	Price       float64
	Features    SignalFeatures
	External    ExternalSignal
	Score       float64
	Tier        Tier
	TargetPrice float64
	StopPrice   float64
	OrderStatus string // set only when an order was submitted for this ticker
}

// SkipCause classifies why a ticker produced no result this run.
type SkipCause string

const (
	SkipNoData     SkipCause = "NO_DATA"
	SkipShortData  SkipCause = "SHORT_DATA"
	SkipIndicator  SkipCause = "INDICATOR"
	SkipExcluded   SkipCause = "EXCLUDED"
	SkipFetchError SkipCause = "FETCH_ERROR"
)

// SkipReason records a ticker that was dropped from the run, for
// observability instead of a silent catch-and-continue.
type SkipReason struct {
	Symbol string
	Cause  SkipCause
	Detail string
}
