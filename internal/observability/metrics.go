package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the feast
// calendar library.
type Metrics struct {
	DatasetLoads *prometheus.CounterVec // labels: outcome={success,error}
	FeastsLoaded prometheus.Gauge

	DateLookups prometheus.Counter
	Searches    *prometheus.CounterVec // labels: field={title,tag,type}
}

// NewMetrics creates and registers all library metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetLoads,
		m.FeastsLoaded,
		m.DateLookups,
		m.Searches,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feast_calendar",
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by outcome.",
		}, []string{"outcome"}),
		FeastsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "feast_calendar",
			Name:      "feasts_loaded",
			Help:      "Number of feast records in the loaded dataset.",
		}),
		DateLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feast_calendar",
			Name:      "date_lookups_total",
			Help:      "Total date-keyed feast lookups.",
		}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feast_calendar",
			Name:      "searches_total",
			Help:      "Search queries by field.",
		}, []string{"field"}),
	}
}
