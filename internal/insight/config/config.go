package config

import (
	"time"

	"golang-stock-insight/pkg/config"
)

// MarketData holds the configuration for the market-data provider.
type MarketData struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
	RedisCacheTTL       time.Duration `mapstructure:"redis_cache_ttl"`
}

// Journal holds journal-specific configuration.
type Journal struct {
	Commission float64 `mapstructure:"commission"`
}

// Watchlist holds the scheduled-scan configuration.
type Watchlist struct {
	ScanCron string `mapstructure:"scan_cron"`
	Interval string `mapstructure:"interval"`
	Range    string `mapstructure:"range"`

	RedisStreamScanTimeout         time.Duration `mapstructure:"redis_stream_scan_timeout"`
	RedisStreamScanRetryInterval   time.Duration `mapstructure:"redis_stream_scan_retry_interval"`
	RedisStreamScanMaxIdleDuration time.Duration `mapstructure:"redis_stream_scan_max_idle_duration"`
	RedisStreamScanMaxRetry        int           `mapstructure:"redis_stream_scan_max_retry"`
}

// Gemini holds the configuration for the optional AI commentary provider.
type Gemini struct {
	Enabled             bool   `mapstructure:"enabled"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the insight service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	MarketData MarketData      `mapstructure:"market_data"`
	Journal    Journal         `mapstructure:"journal"`
	Watchlist  Watchlist       `mapstructure:"watchlist"`
	Gemini     Gemini          `mapstructure:"gemini"`
	Telegram   Telegram        `mapstructure:"telegram"`
}

// Load loads the insight service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
