package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: tok
  chat_id: chat
`)
	t.Setenv("TICKERS", "nvda, tsla,aapl")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := []string{"NVDA", "TSLA", "AAPL"}
	if len(cfg.Universe.Tickers) != len(want) {
		t.Fatalf("expected %d tickers, got %v", len(want), cfg.Universe.Tickers)
	}
	for i, s := range want {
		if cfg.Universe.Tickers[i] != s {
			t.Errorf("ticker %d: expected %s, got %s", i, s, cfg.Universe.Tickers[i])
		}
	}
	if cfg.Universe.VolatilitySymbol != "^VIX" || cfg.Universe.IndexSymbol != "^GSPC" {
		t.Errorf("expected default market symbols, got %+v", cfg.Universe)
	}
	if cfg.Schedule.ScanCron == "" || cfg.Database.SQLitePath == "" {
		t.Error("expected schedule and database defaults")
	}
	if cfg.BrokerEnabled() || cfg.SentimentEnabled() {
		t.Error("broker and sentiment must default to disabled")
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure without telegram credentials")
	}
}

func TestValidate_BrokerNeedsFullCredentials(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: tok
  chat_id: chat
broker:
  app_key: key-only
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure with partial broker credentials")
	}
}
