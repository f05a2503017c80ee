package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/models"
)

// Config holds all application configuration
type Config struct {
	RateSourceURL   string        `env:"RATE_SOURCE_URL" envDefault:"https://www.sbp.org.pk"`
	FallbackRate    float64       `env:"FALLBACK_RATE" envDefault:"8.5"`
	FallbackDate    string        `env:"FALLBACK_DATE" envDefault:"2025-07-01"`
	ForecastOffset  float64       `env:"FORECAST_OFFSET" envDefault:"1.0"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	RequestTimeout  int           `env:"REQUEST_TIMEOUT" envDefault:"10"` // seconds
	FetchMaxRetries int           `env:"FETCH_MAX_RETRIES" envDefault:"0"`
	RequestsPerSec  int           `env:"REQUESTS_PER_SEC" envDefault:"1"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ChartOutput     string        `env:"CHART_OUTPUT"`
	TelegramToken   string        `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID  int64         `env:"TELEGRAM_CHAT_ID"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.RateSourceURL = getEnvWithDefault("RATE_SOURCE_URL", "https://www.sbp.org.pk")
	cfg.FallbackRate = getEnvFloatWithDefault("FALLBACK_RATE", 8.5)
	cfg.FallbackDate = getEnvWithDefault("FALLBACK_DATE", "2025-07-01")
	cfg.ForecastOffset = getEnvFloatWithDefault("FORECAST_OFFSET", 1.0)
	cfg.CacheTTL = getEnvDurationWithDefault("CACHE_TTL", 24*time.Hour)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 10)
	cfg.FetchMaxRetries = getEnvIntWithDefault("FETCH_MAX_RETRIES", 0)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 1)
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = getEnvIntWithDefault("REDIS_DB", 0)
	cfg.HTTPAddr = getEnvWithDefault("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.ChartOutput = os.Getenv("CHART_OUTPUT")
	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would make the fallback path itself unusable
func (c *Config) Validate() error {
	if c.FallbackRate <= 0 {
		return fmt.Errorf("FALLBACK_RATE must be positive, got %v", c.FallbackRate)
	}
	if _, err := time.Parse(models.DateLayout, c.FallbackDate); err != nil {
		return fmt.Errorf("FALLBACK_DATE: %w", err)
	}
	if c.CacheTTL < 0 {
		return errors.New("CACHE_TTL must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be a positive number of seconds, got %d", c.RequestTimeout)
	}
	if c.RateSourceURL == "" {
		return errors.New("RATE_SOURCE_URL is empty")
	}
	return nil
}

// FallbackSnapshot returns the fixed snapshot used when the live fetch fails
func (c *Config) FallbackSnapshot() models.RateSnapshot {
	// Validate guarantees the date parses
	asOf, _ := time.Parse(models.DateLayout, c.FallbackDate)
	return models.RateSnapshot{Rate: c.FallbackRate, AsOf: asOf}
}

// Timeout returns the outbound request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
