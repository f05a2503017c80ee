package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"RATE_SOURCE_URL", "FALLBACK_RATE", "FALLBACK_DATE", "FORECAST_OFFSET",
		"CACHE_TTL", "REQUEST_TIMEOUT", "FETCH_MAX_RETRIES", "REDIS_ADDR", "HTTP_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.sbp.org.pk", cfg.RateSourceURL)
	assert.Equal(t, 8.5, cfg.FallbackRate)
	assert.Equal(t, 1.0, cfg.ForecastOffset)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 0, cfg.FetchMaxRetries)
	assert.Equal(t, ":8080", cfg.HTTPAddr)

	fb := cfg.FallbackSnapshot()
	assert.Equal(t, 8.5, fb.Rate)
	assert.Equal(t, "2025-07-01", fb.AsOfDate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RATE_SOURCE_URL", "http://localhost:9999")
	t.Setenv("FALLBACK_RATE", "11")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("REQUEST_TIMEOUT", "not-a-number")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.RateSourceURL)
	assert.Equal(t, 11.0, cfg.FallbackRate)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.RequestTimeout, "invalid ints keep the default")
	assert.Equal(t, int64(-100123), cfg.TelegramChatID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"non-positive fallback rate", func(c *Config) { c.FallbackRate = 0 }},
		{"bad fallback date", func(c *Config) { c.FallbackDate = "07/01/2025" }},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }},
		{"empty url", func(c *Config) { c.RateSourceURL = "" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				RateSourceURL:  "https://www.sbp.org.pk",
				FallbackRate:   8.5,
				FallbackDate:   "2025-07-01",
				CacheTTL:       time.Hour,
				RequestTimeout: 10,
			}
			require.NoError(t, cfg.Validate())
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	for _, value := range []string{"0", "-5"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("REQUEST_TIMEOUT", value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
