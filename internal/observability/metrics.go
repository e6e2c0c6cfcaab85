package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// geohash service.
type Metrics struct {
	HashesComputed *prometheus.CounterVec // labels: kind={local,global}, outcome={success,invalid,price_unavailable,error}

	// Dow price source metrics.
	DowFetches        *prometheus.CounterVec   // labels: source, outcome={success,error}
	DowFetchDuration  *prometheus.HistogramVec // labels: source
	DowLastGoodSource prometheus.Gauge

	// HTTP API metrics.
	RequestDuration *prometheus.HistogramVec // labels: route
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HashesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geohash",
			Name:      "hashes_computed_total",
			Help:      "Geohash computations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		DowFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geohash",
			Name:      "dow_fetches_total",
			Help:      "Dow opening price fetch attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		DowFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geohash",
			Name:      "dow_fetch_duration_seconds",
			Help:      "Dow source request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		DowLastGoodSource: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "geohash",
			Name:      "dow_last_good_source",
			Help:      "Index of the most recent source that served a price.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geohash",
			Name:      "http_request_duration_seconds",
			Help:      "API request duration in seconds by route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
	}

	prometheus.MustRegister(
		m.HashesComputed,
		m.DowFetches,
		m.DowFetchDuration,
		m.DowLastGoodSource,
		m.RequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HashesComputed:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "geohash", Name: "hashes_computed_total"}, []string{"kind", "outcome"}),
		DowFetches:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "geohash", Name: "dow_fetches_total"}, []string{"source", "outcome"}),
		DowFetchDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "geohash", Name: "dow_fetch_duration_seconds"}, []string{"source"}),
		DowLastGoodSource: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "geohash", Name: "dow_last_good_source"}),
		RequestDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "geohash", Name: "http_request_duration_seconds"}, []string{"route"}),
	}
}
