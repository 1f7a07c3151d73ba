package collector

import (
	"fmt"
	"log"
	"time"

	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// FetchDays is how much history each ticker fetch requests. Comfortably
// more than every indicator lookback plus the 40-bar trailing high.
const FetchDays = 80

// TickerData bundles the raw series and the indicator snapshot computed
// from it.
type TickerData struct {
	Series   *model.PriceSeries
	Snapshot *model.IndicatorSnapshot
}

// Collector fetches per-ticker data and computes the indicator snapshot.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches one ticker's history and computes all indicators at
// the latest bar. Failures come back as a SkipReason instead of aborting
// the run; an indicator short on data propagates as missing, never as a
// silent zero.
func (c *Collector) Collect(symbol string) (*TickerData, *model.SkipReason) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, FetchDays)
	if err != nil {
		return nil, &model.SkipReason{Symbol: symbol, Cause: model.SkipFetchError, Detail: err.Error()}
	}
	if len(bars) == 0 {
		return nil, &model.SkipReason{Symbol: symbol, Cause: model.SkipNoData}
	}
	if len(bars) < model.MinBars {
		return nil, &model.SkipReason{
			Symbol: symbol,
			Cause:  model.SkipShortData,
			Detail: fmt.Sprintf("%d bars, need %d", len(bars), model.MinBars),
		}
	}

	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	snap := &model.IndicatorSnapshot{CurrentPrice: series.Last().Close}

	indicatorErr := func(name string, err error) *model.SkipReason {
		return &model.SkipReason{
			Symbol: symbol,
			Cause:  model.SkipIndicator,
			Detail: fmt.Sprintf("%s: %v", name, err),
		}
	}

	if snap.RSI, err = calculator.CalculateRSI(bars, 14); err != nil {
		return nil, indicatorErr("rsi", err)
	}
	if snap.MFI, err = calculator.CalculateMFI(bars, 14); err != nil {
		return nil, indicatorErr("mfi", err)
	}
	if snap.MACD, snap.Signal, err = calculator.CalculateMACD(bars, 12, 26, 9); err != nil {
		return nil, indicatorErr("macd", err)
	}
	var bbLow, bbHigh, ma, std float64
	if ma, std, bbLow, bbHigh, err = calculator.CalculateBollinger(bars, 20, 2.0); err != nil {
		return nil, indicatorErr("bollinger", err)
	}
	snap.MA20, snap.Std20, snap.BBLow, snap.BBHigh = ma, std, bbLow, bbHigh

	if snap.ATR, err = calculator.CalculateATR(bars, 14); err != nil {
		return nil, indicatorErr("atr", err)
	}
	if snap.AvgVolume5, err = calculator.CalculateAvgVolume(bars, 5); err != nil {
		return nil, indicatorErr("avg volume", err)
	}
	if snap.High40, err = calculator.CalculateTrailingHigh(bars, 40); err != nil {
		return nil, indicatorErr("trailing high", err)
	}

	return &TickerData{Series: series, Snapshot: snap}, nil
}

// CollectExternal fetches earnings proximity and analyst upside for a
// candidate. Failure degrades to a neutral signal, matching the
// treat-absence-and-malformed-alike rule.
func (c *Collector) CollectExternal(symbol string, currentPrice float64) model.ExternalSignal {
	ext, err := c.Fetcher.FetchExternal(symbol, currentPrice)
	if err != nil {
		log.Printf("[WARN] external signal for %s failed: %v", symbol, err)
		return model.ExternalSignal{Sentiment: model.SentimentNeutral}
	}
	if ext.Sentiment == "" {
		ext.Sentiment = model.SentimentNeutral
	}
	return ext
}

// MarketContext fetches the volatility proxy level and the broad index
// single-day return used by the regime classifier. Either value degrades
// to zero on failure, which never flips the regime on its own.
func (c *Collector) MarketContext(volatilitySymbol, indexSymbol string) (vix, indexDayReturn float64) {
	if volatilitySymbol != "" {
		if bars, err := c.Fetcher.FetchDailyBars(volatilitySymbol, 5); err != nil {
			log.Printf("[WARN] volatility proxy fetch failed: %v", err)
		} else if len(bars) > 0 {
			vix = bars[len(bars)-1].Close
		}
	}
	if indexSymbol != "" {
		if bars, err := c.Fetcher.FetchDailyBars(indexSymbol, 5); err != nil {
			log.Printf("[WARN] index fetch failed: %v", err)
		} else if len(bars) >= 2 {
			prev := bars[len(bars)-2].Close
			if prev > 0 {
				indexDayReturn = (bars[len(bars)-1].Close - prev) / prev * 100.0
			}
		}
	}
	return vix, indexDayReturn
}
