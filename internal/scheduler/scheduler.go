package scheduler

import (
	"context"
	"fmt"
	"log"

	"SignalScout/internal/notifier"
	"SignalScout/internal/recorder"
	"SignalScout/internal/scan"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron tasks and telegram commands.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *scan.Runner
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *scan.Runner, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily scan task.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running market scan")
	report := s.Runner.Run(s.Ctx)
	s.trySend(notifier.FormatScanReport(report))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return ""
	case "/stats":
		stats, err := s.Recorder.TickerStats()
		if err != nil {
			return fmt.Sprintf("❌ stats unavailable: %v", err)
		}
		return notifier.FormatTickerStats(stats, recorder.Exclusions(stats))
	default:
		return "Available commands:\n• /scan: run a scan now\n• /stats: per-ticker hit rates"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendChunked(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
