package collector

import (
	"fmt"
	"time"

	"SignalScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars      map[string][]model.OHLCV
	Externals map[string]model.ExternalSignal
	Errors    map[string]error
	BasePrice float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	if m.BasePrice > 0 {
		return GenerateMockBars(m.BasePrice, days), nil
	}
	return nil, fmt.Errorf("mock: no data for %s", symbol)
}

func (m *MockFetcher) FetchExternal(symbol string, _ float64) (model.ExternalSignal, error) {
	if err, ok := m.Errors[symbol]; ok {
		return model.ExternalSignal{Sentiment: model.SentimentNeutral}, err
	}
	if ext, ok := m.Externals[symbol]; ok {
		return ext, nil
	}
	return model.ExternalSignal{Sentiment: model.SentimentNeutral}, nil
}

// GenerateMockBars builds a gently drifting series around a base price.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
