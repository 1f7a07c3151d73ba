package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"SignalScout/internal/broker"
	"SignalScout/internal/budget"
	"SignalScout/internal/collector"
	"SignalScout/internal/config"
	"SignalScout/internal/feature"
	"SignalScout/internal/notifier"
	"SignalScout/internal/recorder"
	"SignalScout/internal/scan"
	"SignalScout/internal/scheduler"
	"SignalScout/internal/sentiment"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SignalScout starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("USE_MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{BasePrice: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init sentiment classifier
	var classifier sentiment.Classifier
	if cfg.SentimentEnabled() {
		classifier = sentiment.NewGeminiClassifier(cfg.Sentiment.BaseURL, cfg.Sentiment.APIKey, cfg.Sentiment.Model)
	} else {
		classifier = sentiment.Disabled{}
	}
	log.Printf("[INFO] sentiment classifier: %s", classifier.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	runner := &scan.Runner{
		Tickers:          cfg.Universe.Tickers,
		VolatilitySymbol: cfg.Universe.VolatilitySymbol,
		IndexSymbol:      cfg.Universe.IndexSymbol,
		Thresholds:       feature.DefaultThresholds(),
		Collector:        collector.NewCollector(fetcher),
		Classifier:       classifier,
		Recorder:         rec,
	}

	// Init broker (optional)
	if cfg.BrokerEnabled() {
		bm, err := budget.NewManager(cfg.Broker.StateFile, cfg.Broker.DailyBudget)
		if err != nil {
			log.Fatalf("[FATAL] init budget manager: %v", err)
		}
		runner.Broker = broker.NewHantuClient(cfg.Broker.BaseURL, cfg.Broker.AppKey, cfg.Broker.SecretKey, cfg.Broker.AccountNo)
		runner.Budget = bm
		runner.OrderAmount = cfg.Broker.OrderAmount
		log.Printf("[INFO] broker enabled: %s (order amount %.0f, daily budget %.0f)",
			runner.Broker.Name(), cfg.Broker.OrderAmount, cfg.Broker.DailyBudget)
	} else {
		log.Println("[INFO] broker disabled, report-only mode")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, runner, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Printf("[INFO] SignalScout is running (%d tickers, cron %q). Press Ctrl+C to stop.",
		len(cfg.Universe.Tickers), cfg.Schedule.ScanCron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SignalScout stopped")
}
