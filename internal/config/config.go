package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var validIntervals = map[string]bool{"1d": true, "1wk": true, "1mo": true}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Scan struct {
		Symbols   []string `yaml:"symbols"`
		Interval  string   `yaml:"interval"`
		Lookback  int      `yaml:"lookback"`
		MinObs    int      `yaml:"min_observations"`
		MinEdge   float64  `yaml:"min_edge"`
		TopN      int      `yaml:"top_n"`
		Watchlist string   `yaml:"watchlist_file"`
	} `yaml:"scan"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Redis struct {
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"redis"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SCAN_SYMBOLS"); v != "" {
		cfg.Scan.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("SCAN_INTERVAL"); v != "" {
		cfg.Scan.Interval = v
	}
	if v := os.Getenv("SCAN_LOOKBACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Lookback = n
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Scan.Symbols) == 0 {
		cfg.Scan.Symbols = []string{"SPY", "QQQ", "AAPL"}
	}
	if cfg.Scan.Interval == "" {
		cfg.Scan.Interval = "1d"
	}
	if cfg.Scan.Lookback == 0 {
		cfg.Scan.Lookback = 1000
	}
	if cfg.Scan.MinObs == 0 {
		cfg.Scan.MinObs = 10
	}
	if cfg.Scan.TopN == 0 {
		cfg.Scan.TopN = 10
	}
	if cfg.Scan.Watchlist == "" {
		cfg.Scan.Watchlist = "data/watchlist.json"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/streak_scanner.db"
	}
	if cfg.Redis.TTLMinutes == 0 {
		cfg.Redis.TTLMinutes = 15
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if !validIntervals[c.Scan.Interval] {
		return fmt.Errorf("scan.interval must be one of 1d, 1wk, 1mo, got %q", c.Scan.Interval)
	}
	if c.Scan.Lookback < c.Scan.MinObs {
		return fmt.Errorf("scan.lookback (%d) must be >= scan.min_observations (%d)", c.Scan.Lookback, c.Scan.MinObs)
	}
	if c.Scan.MinObs < 2 {
		return fmt.Errorf("scan.min_observations must be at least 2")
	}
	if c.Scan.MinEdge < 0 || c.Scan.MinEdge > 100 {
		return fmt.Errorf("scan.min_edge must be within [0, 100]")
	}
	return nil
}
