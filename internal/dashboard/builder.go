package dashboard

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/analyze"
	"github.com/Alias1177/RateShift/internal/metrics"
	"github.com/Alias1177/RateShift/models"
)

// RateFetcher returns the policy rate to display. It must not fail.
type RateFetcher interface {
	Fetch(ctx context.Context) models.RateResult
}

// Builder runs fetch -> forecast -> recommend, then loads the fund history
type Builder struct {
	rates      RateFetcher
	forecaster models.Forecaster
	funds      models.FundDataSource
	now        func() time.Time
	logger     zerolog.Logger
}

func NewBuilder(rates RateFetcher, forecaster models.Forecaster, funds models.FundDataSource) *Builder {
	return &Builder{
		rates:      rates,
		forecaster: forecaster,
		funds:      funds,
		now:        time.Now,
		logger:     log.With().Str("component", "dashboard").Logger(),
	}
}

// Build assembles one dashboard. A fund history error leaves History empty.
func (b *Builder) Build(ctx context.Context) models.Dashboard {
	rate := b.rates.Fetch(ctx)
	current := rate.Snapshot.Rate
	projected := b.forecaster.Forecast(current)

	d := models.Dashboard{
		Rate:           rate,
		Forecast:       projected,
		Recommendation: analyze.Recommend(current, projected),
		GeneratedAt:    b.now(),
	}

	history, err := b.funds.Load(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("Fund history unavailable")
	} else {
		d.History = history
	}

	b.logger.Debug().
		Float64("rate", current).
		Float64("forecast", projected).
		Str("freshness", string(rate.Freshness)).
		Str("recommendation", string(d.Recommendation)).
		Msg("Dashboard built")

	metrics.ObserveDashboard(d)
	return d
}
