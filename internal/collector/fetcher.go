package collector

import "SignalScout/internal/model"

// Fetcher defines the interface for fetching market data. Implementations
// carry their own bounded HTTP timeouts; a failed fetch skips the ticker,
// it never aborts the run.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	// FetchExternal returns earnings proximity and analyst upside for a
	// symbol. Sentiment is left unset; the sentiment classifier fills it.
	FetchExternal(symbol string, currentPrice float64) (model.ExternalSignal, error)
	Name() string
}
