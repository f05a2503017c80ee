package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/RateShift/internal/config"
	"github.com/Alias1177/RateShift/models"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		RateSourceURL:  url,
		FallbackRate:   8.5,
		FallbackDate:   "2025-07-01",
		ForecastOffset: 1.0,
		CacheTTL:       time.Hour,
		RequestTimeout: 1,
		RequestsPerSec: 100,
	}
}

func TestNewServesLiveThenCached(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`<table><tr><td>Policy Rate</td><td>11.00%</td></tr></table>`))
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL))
	defer a.Close()

	first := a.Builder.Build(context.Background())
	assert.Equal(t, models.FreshnessLive, first.Rate.Freshness)
	assert.Equal(t, 11.0, first.Rate.Snapshot.Rate)
	assert.InDelta(t, 10.0, first.Forecast, 1e-9)
	assert.Len(t, first.History, 24)

	second := a.Builder.Build(context.Background())
	assert.Equal(t, models.FreshnessCached, second.Rate.Freshness)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNewFallsBackWhenSourceDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a := New(testConfig(srv.URL))
	require.NoError(t, a.Close())

	d := a.Builder.Build(context.Background())
	assert.True(t, d.Rate.IsFallback())
	assert.Equal(t, 8.5, d.Rate.Snapshot.Rate)
	assert.Equal(t, "2025-07-01", d.Rate.Snapshot.AsOfDate())
	assert.Equal(t, models.Balanced, d.Recommendation)
}
