package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StreakScanner/internal/cache"
	"StreakScanner/internal/collector"
	"StreakScanner/internal/config"
	"StreakScanner/internal/notifier"
	"StreakScanner/internal/recorder"
	"StreakScanner/internal/scanner"
	"StreakScanner/internal/scheduler"
	"StreakScanner/internal/universe"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StreakScanner starting...")

	// Load .env if present, then config
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}
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
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init series cache (optional)
	var seriesCache *cache.SeriesCache
	if cfg.Redis.Addr != "" {
		sc, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLMinutes)*time.Minute)
		if err != nil {
			log.Printf("[WARN] init redis cache failed, running uncached: %v", err)
		} else {
			seriesCache = sc
			defer sc.Close()
			log.Printf("[INFO] redis cache enabled: %s", cfg.Redis.Addr)
		}
	}

	// Init collector and scanner
	col := collector.NewCollector(fetcher, seriesCache, cfg.Scan.Interval, cfg.Scan.Lookback, cfg.Scan.MinObs)
	sc := scanner.NewScanner(col, cfg.Scan.MinEdge, cfg.Scan.TopN)

	// Init universe manager
	uni, err := universe.NewManager(cfg.Scan.Watchlist, cfg.Scan.Symbols)
	if err != nil {
		log.Fatalf("[FATAL] init universe manager: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, sc, uni, tn, rec)
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

	log.Println("[INFO] StreakScanner is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StreakScanner stopped")
}
