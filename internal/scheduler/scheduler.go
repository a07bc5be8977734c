package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"StreakScanner/internal/collector"
	"StreakScanner/internal/notifier"
	"StreakScanner/internal/recorder"
	"StreakScanner/internal/scanner"
	"StreakScanner/internal/universe"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the scheduled scans and the bot command surface.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Scanner   *scanner.Scanner
	Universe  *universe.Manager
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, sc *scanner.Scanner, uni *universe.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Scanner:   sc,
		Universe:  uni,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the scheduled scan task.
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

// RunScanNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	symbols := s.Universe.Symbols()
	if len(symbols) == 0 {
		log.Println("[WARN] scan skipped: empty universe")
		return
	}
	log.Printf("[INFO] running scan over %d symbols", len(symbols))

	start := time.Now()
	results, sum := s.Scanner.Scan(s.Ctx, symbols)
	elapsed := time.Since(start)

	if err := s.Notifier.SendScanReport(s.Ctx, results, sum.Scanned, sum.Failed); err != nil {
		log.Printf("[ERROR] send scan report: %v", err)
	}
	if len(results) > 0 {
		if err := s.Notifier.SendAnalysis(s.Ctx, results[0].Analysis); err != nil {
			log.Printf("[ERROR] send top analysis: %v", err)
		}
	}

	for _, r := range results {
		if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{Analysis: r.Analysis, Trigger: "SCAN"}); err != nil {
			log.Printf("[ERROR] record analysis %s: %v", r.Analysis.Symbol, err)
		}
	}

	evt := &recorder.ScanEvent{
		Interval:   s.Collector.Interval,
		Scanned:    sum.Scanned,
		Failed:     sum.Failed,
		Returned:   len(results),
		DurationMs: elapsed.Milliseconds(),
	}
	if len(results) > 0 {
		evt.TopSymbol = results[0].Analysis.Symbol
		evt.TopEdge = results[0].Analysis.Edge()
	}
	if err := s.Recorder.RecordScan(evt); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
}

// HandleCommand processes a parsed bot command and returns a reply.
func (s *Scheduler) HandleCommand(cmd notifier.Command) string {
	switch cmd.Name {
	case "/scan":
		s.scanTask()
		return ""
	case "/analyze":
		if len(cmd.Args) < 1 {
			return "Usage: /analyze SYMBOL"
		}
		return s.analyzeSymbol(cmd.Args[0])
	case "/dist":
		if len(cmd.Args) < 1 {
			return "Usage: /dist SYMBOL"
		}
		a, err := s.Collector.Analyze(s.Ctx, cmd.Args[0])
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatDistribution(a)
	case "/watch":
		return s.handleWatch(cmd.Args)
	default:
		return helpText
	}
}

func (s *Scheduler) analyzeSymbol(symbol string) string {
	a, err := s.Collector.Analyze(s.Ctx, symbol)
	if err != nil {
		return fmt.Sprintf("❌ %v", err)
	}
	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{Analysis: a, Trigger: "MANUAL"}); err != nil {
		log.Printf("[ERROR] record analysis %s: %v", a.Symbol, err)
	}
	return notifier.FormatAnalysisReport(a)
}

func (s *Scheduler) handleWatch(args []string) string {
	if len(args) == 0 {
		return "Usage: /watch add|remove|list [SYMBOL]"
	}
	switch strings.ToLower(args[0]) {
	case "add":
		if len(args) < 2 {
			return "Usage: /watch add SYMBOL"
		}
		if s.Universe.Add(args[1]) {
			return fmt.Sprintf("✅ %s added to watchlist", strings.ToUpper(args[1]))
		}
		return fmt.Sprintf("%s is already on the watchlist", strings.ToUpper(args[1]))
	case "remove":
		if len(args) < 2 {
			return "Usage: /watch remove SYMBOL"
		}
		if s.Universe.Remove(args[1]) {
			return fmt.Sprintf("✅ %s removed from watchlist", strings.ToUpper(args[1]))
		}
		return fmt.Sprintf("%s is not on the watchlist", strings.ToUpper(args[1]))
	case "list":
		watch := s.Universe.Watchlist()
		if len(watch) == 0 {
			return "Watchlist is empty. Scan universe:\n" + strings.Join(s.Universe.Symbols(), ", ")
		}
		return "Watchlist:\n" + strings.Join(watch, ", ")
	default:
		return "Usage: /watch add|remove|list [SYMBOL]"
	}
}

const helpText = "Available commands:\n" +
	"• /scan\n" +
	"• /analyze SYMBOL\n" +
	"• /dist SYMBOL\n" +
	"• /watch add|remove|list [SYMBOL]"
