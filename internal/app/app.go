package app

import (
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/api/sbp"
	"github.com/Alias1177/RateShift/internal/cache"
	"github.com/Alias1177/RateShift/internal/config"
	"github.com/Alias1177/RateShift/internal/dashboard"
	"github.com/Alias1177/RateShift/internal/forecast"
	"github.com/Alias1177/RateShift/internal/funds"
	"github.com/Alias1177/RateShift/internal/rates"
	"github.com/Alias1177/RateShift/models"
)

// SetupLogging configures the global zerolog logger for console output
func SetupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)
}

// App holds the components shared by every binary
type App struct {
	Builder *dashboard.Builder
	Funds   models.FundDataSource
	redis   *redis.Client
}

// New wires source, cache, fetcher, forecaster and fund data from the config.
// Redis is used for the snapshot cache when REDIS_ADDR is set.
func New(cfg *config.Config) *App {
	source := sbp.NewClient(sbp.ClientOptions{
		BaseURL:        cfg.RateSourceURL,
		RequestTimeout: cfg.Timeout(),
		RequestsPerSec: cfg.RequestsPerSec,
		MaxRetries:     cfg.FetchMaxRetries,
	})

	a := &App{Funds: funds.NewStaticSource()}

	var snapshots models.SnapshotCache
	if cfg.RedisAddr != "" {
		a.redis = cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		snapshots = cache.NewRedisCache(a.redis, cfg.CacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis snapshot cache")
	} else {
		snapshots = cache.NewMemoryCache(cfg.CacheTTL, cache.SystemClock{})
	}

	fetcher := rates.NewFetcher(source, snapshots, cfg.FallbackSnapshot())
	a.Builder = dashboard.NewBuilder(fetcher, forecast.NewOffsetForecaster(cfg.ForecastOffset), a.Funds)
	return a
}

// Close releases the Redis connection, if any
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
