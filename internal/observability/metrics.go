package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the VHI service.
type Metrics struct {
	FetchAttempts *prometheus.CounterVec // label: outcome={success,skipped,error}
	ParseFailures prometheus.Counter
	DatasetRecords prometheus.Gauge
	BuildDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.FetchAttempts,
		m.ParseFailures,
		m.DatasetRecords,
		m.BuildDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// multiple tests can construct them without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vhi",
			Name:      "fetch_attempts_total",
			Help:      "Raw file download attempts by outcome.",
		}, []string{"outcome"}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vhi",
			Name:      "parse_failures_total",
			Help:      "Raw files excluded from the dataset because parsing failed.",
		}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vhi",
			Name:      "dataset_records",
			Help:      "Records in the most recently built dataset.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vhi",
			Name:      "build_duration_seconds",
			Help:      "Duration of a full dataset rebuild.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}
