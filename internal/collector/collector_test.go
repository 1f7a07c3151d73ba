package collector

import (
	"errors"
	"testing"

	"SignalScout/internal/model"
)

func TestCollect_Snapshot(t *testing.T) {
	col := NewCollector(&MockFetcher{BasePrice: 100})
	data, skip := col.Collect("AAPL")
	if skip != nil {
		t.Fatalf("unexpected skip: %+v", skip)
	}
	if data.Series.Len() != FetchDays {
		t.Errorf("expected %d bars, got %d", FetchDays, data.Series.Len())
	}
	snap := data.Snapshot
	if snap.CurrentPrice <= 0 {
		t.Error("expected positive current price")
	}
	if snap.RSI < 0 || snap.RSI > 100 {
		t.Errorf("RSI out of range: %v", snap.RSI)
	}
	if snap.BBLow >= snap.BBHigh {
		t.Errorf("lower band must sit below upper band: %v >= %v", snap.BBLow, snap.BBHigh)
	}
	if snap.ATR <= 0 {
		t.Errorf("expected positive ATR, got %v", snap.ATR)
	}
	if snap.High40 < snap.CurrentPrice {
		t.Errorf("trailing high %v below current price %v", snap.High40, snap.CurrentPrice)
	}
}

func TestCollect_SkipReasons(t *testing.T) {
	short := GenerateMockBars(50, 10)
	col := NewCollector(&MockFetcher{
		Bars:   map[string][]model.OHLCV{"SHORT": short, "EMPTY": {}},
		Errors: map[string]error{"BROKEN": errors.New("boom")},
	})

	if _, skip := col.Collect("SHORT"); skip == nil || skip.Cause != model.SkipShortData {
		t.Errorf("expected SHORT_DATA skip, got %+v", skip)
	}
	if _, skip := col.Collect("EMPTY"); skip == nil || skip.Cause != model.SkipNoData {
		t.Errorf("expected NO_DATA skip, got %+v", skip)
	}
	if _, skip := col.Collect("BROKEN"); skip == nil || skip.Cause != model.SkipFetchError {
		t.Errorf("expected FETCH_ERROR skip, got %+v", skip)
	}
}

func TestCollectExternal_DegradesToNeutral(t *testing.T) {
	col := NewCollector(&MockFetcher{
		Errors: map[string]error{"BROKEN": errors.New("boom")},
	})
	ext := col.CollectExternal("BROKEN", 100)
	if ext.Sentiment != model.SentimentNeutral {
		t.Errorf("expected neutral sentiment on failure, got %s", ext.Sentiment)
	}
	if ext.EarningsDaysUntil != nil || ext.AnalystUpsidePct != nil {
		t.Error("expected empty external signal on failure")
	}
}

func TestMarketContext(t *testing.T) {
	vixBars := GenerateMockBars(30, 5)
	idxBars := []model.OHLCV{{Close: 100}, {Close: 98}}
	col := NewCollector(&MockFetcher{
		Bars: map[string][]model.OHLCV{"^VIX": vixBars, "^GSPC": idxBars},
	})
	vix, ret := col.MarketContext("^VIX", "^GSPC")
	if vix != vixBars[len(vixBars)-1].Close {
		t.Errorf("expected vix %v, got %v", vixBars[len(vixBars)-1].Close, vix)
	}
	if ret != -2.0 {
		t.Errorf("expected -2%% index return, got %v", ret)
	}

	// Fetch failures degrade to zero, never abort.
	col = NewCollector(&MockFetcher{Errors: map[string]error{"^VIX": errors.New("down"), "^GSPC": errors.New("down")}})
	vix, ret = col.MarketContext("^VIX", "^GSPC")
	if vix != 0 || ret != 0 {
		t.Errorf("expected zero context on failure, got vix=%v ret=%v", vix, ret)
	}
}
