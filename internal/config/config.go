package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Universe struct {
		Tickers          []string `yaml:"tickers"`
		VolatilitySymbol string   `yaml:"volatility_symbol"`
		IndexSymbol      string   `yaml:"index_symbol"`
	} `yaml:"universe"`
	Sentiment struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
	} `yaml:"sentiment"`
	Broker struct {
		BaseURL     string  `yaml:"base_url"`
		AppKey      string  `yaml:"app_key"`
		SecretKey   string  `yaml:"secret_key"`
		AccountNo   string  `yaml:"account_no"`
		OrderAmount float64 `yaml:"order_amount"`
		DailyBudget float64 `yaml:"daily_budget"`
		StateFile   string  `yaml:"state_file"`
	} `yaml:"broker"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// DefaultTickers is the fallback scan universe when none is configured.
var DefaultTickers = []string{
	"QQQ", "TQQQ", "NVDA", "TSLA", "AAPL", "MSFT",
	"SOXL", "AMD", "META", "AMZN", "NFLX", "GOOGL",
}

// Load reads config from a YAML file, then applies environment variable
// overrides.
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
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Universe.Tickers = splitTickers(v)
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Sentiment.APIKey = v
	}
	if v := os.Getenv("HANTU_APP_KEY"); v != "" {
		cfg.Broker.AppKey = v
	}
	if v := os.Getenv("HANTU_SECRET_KEY"); v != "" {
		cfg.Broker.SecretKey = v
	}
	if v := os.Getenv("HANTU_ACCOUNT_NO"); v != "" {
		cfg.Broker.AccountNo = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Universe.Tickers) == 0 {
		cfg.Universe.Tickers = DefaultTickers
	}
	if cfg.Universe.VolatilitySymbol == "" {
		cfg.Universe.VolatilitySymbol = "^VIX"
	}
	if cfg.Universe.IndexSymbol == "" {
		cfg.Universe.IndexSymbol = "^GSPC"
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays after the US close.
		cfg.Schedule.ScanCron = "0 30 21 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signalscout.db"
	}
	if cfg.Broker.OrderAmount == 0 {
		cfg.Broker.OrderAmount = 500
	}
	if cfg.Broker.DailyBudget == 0 {
		cfg.Broker.DailyBudget = 2000
	}
	if cfg.Broker.StateFile == "" {
		cfg.Broker.StateFile = "data/budget_state.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. A failed validation
// stops the process before any endpoint is contacted.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Universe.Tickers) == 0 {
		return fmt.Errorf("universe.tickers must not be empty")
	}
	if c.BrokerEnabled() {
		if c.Broker.SecretKey == "" || c.Broker.AccountNo == "" {
			return fmt.Errorf("broker.secret_key and broker.account_no are required when broker.app_key is set")
		}
		if c.Broker.OrderAmount <= 0 || c.Broker.DailyBudget <= 0 {
			return fmt.Errorf("broker amounts must be positive")
		}
	}
	return nil
}

// BrokerEnabled reports whether order submission is configured.
func (c *Config) BrokerEnabled() bool { return c.Broker.AppKey != "" }

// SentimentEnabled reports whether the AI sentiment classifier is
// configured.
func (c *Config) SentimentEnabled() bool { return c.Sentiment.APIKey != "" }

func splitTickers(v string) []string {
	parts := strings.Split(v, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tickers = append(tickers, strings.ToUpper(t))
		}
	}
	return tickers
}
