package scan

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"SignalScout/internal/broker"
	"SignalScout/internal/budget"
	"SignalScout/internal/collector"
	"SignalScout/internal/feature"
	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
	"SignalScout/internal/sentiment"
	"SignalScout/internal/strategy"
)

const (
	rsiPeriod        = 14
	sentimentTimeout = 20 * time.Second
)

// Runner owns one scan over the configured universe. Per-ticker
// failures become SkipReasons; nothing short of a cancelled context
// stops the run before the full universe is processed.
type Runner struct {
	Tickers          []string
	VolatilitySymbol string
	IndexSymbol      string
	Thresholds       feature.Thresholds

	Collector  *collector.Collector
	Classifier sentiment.Classifier
	Recorder   recorder.Recorder

	// Broker and Budget are nil when order submission is not configured.
	Broker      broker.Client
	Budget      *budget.Manager
	OrderAmount float64
}

type collected struct {
	symbol string
	data   *collector.TickerData
}

// Run executes one full scan and returns the report. The trade-log
// append happens exactly once, after all per-ticker processing.
func (r *Runner) Run(ctx context.Context) *model.ScanReport {
	report := &model.ScanReport{RunAt: time.Now()}

	// Exclusion set from the historical trade log.
	stats, err := r.Recorder.TickerStats()
	if err != nil {
		log.Printf("[WARN] trade log aggregation failed, no exclusions: %v", err)
		stats = map[string]model.TickerStats{}
	}
	excluded := recorder.Exclusions(stats)

	vix, indexReturn := r.Collector.MarketContext(r.VolatilitySymbol, r.IndexSymbol)

	// Pass 1: fetch the whole universe and measure breadth.
	var breadth strategy.BreadthCounter
	items := make([]collected, 0, len(r.Tickers))
	for _, symbol := range r.Tickers {
		if ctx.Err() != nil {
			log.Println("[WARN] scan cancelled")
			return report
		}
		if excluded[symbol] {
			report.Excluded++
			report.Skips = append(report.Skips, model.SkipReason{
				Symbol: symbol, Cause: model.SkipExcluded, Detail: "low historical hit rate"})
			continue
		}
		data, skip := r.Collector.Collect(symbol)
		if skip != nil {
			log.Printf("[WARN] skip %s: %s %s", skip.Symbol, skip.Cause, skip.Detail)
			report.Skips = append(report.Skips, *skip)
			continue
		}
		breadth.Observe(data.Snapshot.CurrentPrice < data.Snapshot.MA20)
		items = append(items, collected{symbol: symbol, data: data})
	}
	report.Analyzed = len(items)

	report.Regime = strategy.ClassifyRegime(breadth.Ratio(), vix, indexReturn)
	log.Printf("[INFO] regime=%s breadth=%.2f vix=%.1f index=%.2f%% analyzed=%d",
		report.Regime.Mode, report.Regime.BreadthRatio, vix, indexReturn, report.Analyzed)

	// Pass 2: review yesterday's signals, extract features, score, tier.
	for _, it := range items {
		series, snap := it.data.Series, it.data.Snapshot

		if rv, ok := strategy.ReviewPrevSignal(series, r.Thresholds.OversoldRSI, report.Regime, rsiPeriod); ok {
			report.Reviews = append(report.Reviews, rv)
		}

		features := feature.Extract(snap, series.Bars, r.Thresholds)

		ext := model.ExternalSignal{Sentiment: model.SentimentNeutral}
		if features.IsOversold {
			// External lookups only for actual candidates; the rest of
			// the universe scores on technicals alone.
			ext = r.Collector.CollectExternal(it.symbol, snap.CurrentPrice)
			ext.Sentiment = r.classifySentiment(ctx, it.symbol)
		}

		st := strategy.Evaluate(it.symbol, snap, features, ext, report.Regime)
		switch st.Tier {
		case model.TierSuper:
			report.Super = append(report.Super, st)
		case model.TierStrong:
			report.Strong = append(report.Strong, st)
		case model.TierNormal:
			report.Normal = append(report.Normal, st)
		}
	}

	sortByScore(report.Super)
	sortByScore(report.Strong)
	sortByScore(report.Normal)

	r.placeOrders(report)
	r.persist(report)
	return report
}

func (r *Runner) classifySentiment(ctx context.Context, symbol string) model.Sentiment {
	cctx, cancel := context.WithTimeout(ctx, sentimentTimeout)
	defer cancel()
	label, err := r.Classifier.Classify(cctx, symbol, nil)
	if err != nil {
		log.Printf("[WARN] sentiment for %s failed, using neutral: %v", symbol, err)
		return model.SentimentNeutral
	}
	return label
}

// placeOrders submits market buys for SUPER-tier tickers, capped by the
// daily budget. Failures are recorded in the report only.
func (r *Runner) placeOrders(report *model.ScanReport) {
	if r.Broker == nil || r.Budget == nil {
		return
	}
	for _, st := range report.Super {
		if st.Price <= 0 {
			continue
		}
		qty := decimal.NewFromFloat(r.OrderAmount).
			Div(decimal.NewFromFloat(st.Price)).
			IntPart()
		if qty < 1 {
			st.OrderStatus = "SKIPPED: price above order amount"
			continue
		}
		cost, _ := decimal.NewFromInt(qty).Mul(decimal.NewFromFloat(st.Price)).Float64()
		if !r.Budget.Reserve(cost) {
			st.OrderStatus = "SKIPPED: daily budget exhausted"
			continue
		}
		status, err := r.Broker.PlaceMarketBuy(st.Symbol, qty)
		if err != nil {
			log.Printf("[ERROR] order %s x%d failed: %v", st.Symbol, qty, err)
			if status == "" {
				status = "ERROR"
			}
		} else {
			log.Printf("[INFO] order placed: %s x%d (%s)", st.Symbol, qty, status)
		}
		st.OrderStatus = status
	}
}

// persist appends review rows and the run snapshot. Recording failures
// are logged, never fatal.
func (r *Runner) persist(report *model.ScanReport) {
	day := report.RunAt
	for _, rv := range report.Reviews {
		row := model.TradeLogRow{Date: day, Symbol: rv.Symbol, Hit: rv.Hit}
		if err := r.Recorder.RecordReview(&row); err != nil {
			log.Printf("[ERROR] record review %s: %v", rv.Symbol, err)
		}
	}
	snap := &recorder.ScanSnapshot{
		Regime:       report.Regime,
		Analyzed:     report.Analyzed,
		Skipped:      len(report.Skips),
		SuperCount:   len(report.Super),
		StrongCount:  len(report.Strong),
		NormalCount:  len(report.Normal),
		ReviewHits:   report.ReviewHits(),
		ReviewTotal:  len(report.Reviews),
		OrdersPlaced: report.Orders(),
	}
	if err := r.Recorder.RecordScan(snap); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
}

func sortByScore(tickers []*model.ScoredTicker) {
	sort.Slice(tickers, func(i, j int) bool { return tickers[i].Score > tickers[j].Score })
}
