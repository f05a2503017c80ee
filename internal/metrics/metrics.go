package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Alias1177/RateShift/models"
)

var (
	rateFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rateshift_rate_fetch_total",
			Help: "Policy rate lookups by where the served snapshot came from",
		},
		[]string{"freshness"},
	)

	policyRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rateshift_policy_rate_percent",
			Help: "Policy rate shown on the last rendered dashboard",
		},
	)

	forecastRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rateshift_forecast_rate_percent",
			Help: "Forecast rate shown on the last rendered dashboard",
		},
	)

	renderSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rateshift_render_duration_seconds",
			Help:    "Time spent rendering a dashboard view",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)
)

// ObserveFetch counts one rate lookup
func ObserveFetch(freshness models.Freshness) {
	rateFetches.WithLabelValues(string(freshness)).Inc()
}

// ObserveDashboard records the rates on a freshly built dashboard
func ObserveDashboard(d models.Dashboard) {
	policyRate.Set(d.Rate.Snapshot.Rate)
	forecastRate.Set(d.Forecast)
}

// ObserveRender records how long a view took, in seconds
func ObserveRender(view string, seconds float64) {
	renderSeconds.WithLabelValues(view).Observe(seconds)
}
