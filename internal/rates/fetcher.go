package rates

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/metrics"
	"github.com/Alias1177/RateShift/models"
)

// Fetcher serves the policy rate from cache, the live source, or the fallback snapshot, in that order
type Fetcher struct {
	source   models.RateSource
	cache    models.SnapshotCache
	fallback models.RateSnapshot
	logger   zerolog.Logger
}

// NewFetcher creates a fetcher. cache may be nil to always hit the source.
func NewFetcher(source models.RateSource, cache models.SnapshotCache, fallback models.RateSnapshot) *Fetcher {
	return &Fetcher{
		source:   source,
		cache:    cache,
		fallback: fallback,
		logger:   log.With().Str("component", "rate_fetcher").Logger(),
	}
}

// Fetch never fails: any source error yields the fallback snapshot with the error attached
func (f *Fetcher) Fetch(ctx context.Context) models.RateResult {
	result := f.fetch(ctx)
	metrics.ObserveFetch(result.Freshness)
	return result
}

func (f *Fetcher) fetch(ctx context.Context) models.RateResult {
	if f.cache != nil {
		if snap, ok := f.cache.Get(ctx); ok {
			return models.RateResult{Snapshot: snap, Freshness: models.FreshnessCached}
		}
	}

	snap, err := f.source.PolicyRate(ctx)
	if err != nil {
		f.logger.Warn().Err(err).
			Float64("fallback_rate", f.fallback.Rate).
			Str("fallback_date", f.fallback.AsOfDate()).
			Msg("Live policy rate unavailable, using fallback")
		return models.RateResult{Snapshot: f.fallback, Freshness: models.FreshnessFallback, Err: err}
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, snap); err != nil {
			f.logger.Warn().Err(err).Msg("Failed to cache policy rate")
		}
	}

	f.logger.Info().Float64("rate", snap.Rate).Str("as_of", snap.AsOfDate()).Msg("Live policy rate fetched")
	return models.RateResult{Snapshot: snap, Freshness: models.FreshnessLive}
}
