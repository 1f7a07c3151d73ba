package broker

// Client submits orders to a brokerage. The pipeline only records the
// returned status in its report; it takes no corrective action on
// failure.
type Client interface {
	// PlaceMarketBuy submits a market buy for `quantity` shares and
	// returns the brokerage status code.
	PlaceMarketBuy(symbol string, quantity int64) (string, error)
	Name() string
}
