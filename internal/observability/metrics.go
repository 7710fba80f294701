package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// refresh pipeline. Category labels are "covid", "vaccine", "news".
type Metrics struct {
	CyclesTotal     *prometheus.CounterVec // labels: category, outcome={updated,unchanged,error}
	CycleDuration   *prometheus.HistogramVec
	FetchRetries    prometheus.Counter
	FilesWritten    *prometheus.CounterVec
	LastRefreshTime *prometheus.GaugeVec
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleDuration,
		m.FetchRetries,
		m.FilesWritten,
		m.LastRefreshTime,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CyclesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "covid_api",
			Name:      "refresh_cycles_total",
			Help:      "Refresh cycles by category and outcome.",
		}, []string{"category", "outcome"}),
		CycleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "covid_api",
			Name:      "refresh_cycle_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-persist cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"category"}),
		FetchRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "covid_api",
			Name:      "fetch_retries_total",
			Help:      "Total HTTP fetch retries across all sources.",
		}),
		FilesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "covid_api",
			Name:      "files_written_total",
			Help:      "Snapshot files written by category.",
		}, []string{"category"}),
		LastRefreshTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "covid_api",
			Name:      "last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful refresh by category.",
		}, []string{"category"}),
	}
}
