package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"data_source"`
	Refresh struct {
		BaseIntervalSeconds int `yaml:"base_interval_seconds"`
		TimeoutSeconds      int `yaml:"timeout_seconds"`
	} `yaml:"refresh"`
	Schedule struct {
		DailyReportCron string `yaml:"daily_report_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Alerts struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"alerts"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine: defaults plus env vars form a complete
// offline configuration.
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
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("QUOTE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("WATCH_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("BASE_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.BaseIntervalSeconds = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "DEMO"
	}
	if cfg.Refresh.BaseIntervalSeconds == 0 {
		cfg.Refresh.BaseIntervalSeconds = 60
	}
	if cfg.Refresh.TimeoutSeconds == 0 {
		cfg.Refresh.TimeoutSeconds = 5
	}
	if cfg.Schedule.DailyReportCron == "" {
		cfg.Schedule.DailyReportCron = "0 10 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/ticker_sentinel.db"
	}
	if cfg.Alerts.StateFile == "" {
		cfg.Alerts.StateFile = "data/alert_rules.json"
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent. Telegram
// is optional (the console notifier takes over), but a token without a chat
// is a misconfiguration.
func (c *Config) Validate() error {
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if c.Refresh.BaseIntervalSeconds <= 0 {
		return fmt.Errorf("refresh.base_interval_seconds must be positive")
	}
	if c.Refresh.TimeoutSeconds <= 0 {
		return fmt.Errorf("refresh.timeout_seconds must be positive")
	}
	return nil
}
