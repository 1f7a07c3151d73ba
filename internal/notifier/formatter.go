package notifier

import (
	"fmt"
	"sort"
	"strings"

	"SignalScout/internal/model"
)

// Per-section display caps, so a broad oversold day does not flood the
// chat.
const (
	maxSuperShown  = 5
	maxStrongShown = 10
	maxNormalShown = 15
	maxReviewShown = 8
)

// FormatScanReport formats a full scan into a Telegram HTML message.
func FormatScanReport(r *model.ScanReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>SignalScout Daily Scan</b> | %s\n", r.RunAt.Format("2006-01-02 15:04")))

	mode := "🚀 NORMAL TREND"
	if r.Regime.Defensive() {
		mode = "⚠️ DEFENSIVE MODE"
	}
	b.WriteString(fmt.Sprintf("Mode: %s\n", mode))
	b.WriteString(fmt.Sprintf("Breadth below MA20: %.1f%% | Vol index: %.1f | Index day: %+.2f%%\n",
		r.Regime.BreadthRatio*100, r.Regime.VolatilityIndex, r.Regime.IndexDayReturn))
	b.WriteString(fmt.Sprintf("Profit target: +%.1f%%\n\n", (r.Regime.TargetMultiplier-1)*100))

	b.WriteString("🔁 <b>Previous-session review:</b>\n")
	if len(r.Reviews) == 0 {
		b.WriteString("- none\n")
	} else {
		parts := make([]string, 0, len(r.Reviews))
		for i, rv := range r.Reviews {
			if i >= maxReviewShown {
				break
			}
			mark := "⏳miss"
			if rv.Hit {
				mark = "🎯hit"
			}
			parts = append(parts, fmt.Sprintf("%s:%s", rv.Symbol, mark))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(fmt.Sprintf("  (%d/%d hit)\n", r.ReviewHits(), len(r.Reviews)))
	}
	b.WriteString("\n")

	writeTierSection(&b, "🎯 <b>SUPER BUY</b>", r.Super, maxSuperShown)
	writeTierSection(&b, "💎 <b>STRONG BUY</b>", r.Strong, maxStrongShown)
	writeTierSection(&b, "📈 <b>NORMAL BUY</b>", r.Normal, maxNormalShown)

	b.WriteString(fmt.Sprintf("✅ Analyzed %d tickers | skipped %d | excluded %d\n",
		r.Analyzed, len(r.Skips), r.Excluded))
	return b.String()
}

func writeTierSection(b *strings.Builder, header string, tickers []*model.ScoredTicker, limit int) {
	b.WriteString(header)
	b.WriteString("\n")
	if len(tickers) == 0 {
		b.WriteString("- none\n\n")
		return
	}
	for i, st := range tickers {
		if i >= limit {
			b.WriteString(fmt.Sprintf("… and %d more\n", len(tickers)-limit))
			break
		}
		b.WriteString(fmt.Sprintf("%s (score %.0f) target $%.2f stop $%.2f",
			st.Symbol, st.Score, st.TargetPrice, st.StopPrice))
		if st.External.Sentiment != model.SentimentNeutral {
			b.WriteString(fmt.Sprintf(" | %s", st.External.Sentiment))
		}
		if st.OrderStatus != "" {
			b.WriteString(fmt.Sprintf(" | order: %s", st.OrderStatus))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// FormatTickerStats formats the trade-log aggregation for the /stats
// command.
func FormatTickerStats(stats map[string]model.TickerStats, excluded map[string]bool) string {
	if len(stats) == 0 {
		return "📦 <b>Trade log</b>\n\n- empty"
	}

	symbols := make([]string, 0, len(stats))
	for s := range stats {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var b strings.Builder
	b.WriteString("📦 <b>Trade log</b>\n\n")
	for _, sym := range symbols {
		s := stats[sym]
		b.WriteString(fmt.Sprintf("%s: %d reviews, %.0f%% hit", sym, s.Count, s.HitRate*100))
		if excluded[sym] {
			b.WriteString(" 🚫 excluded")
		}
		b.WriteString("\n")
	}
	return b.String()
}
