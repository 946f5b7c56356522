package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the server's private prometheus registry.
type Metrics struct {
	reg *prometheus.Registry

	Queries      prometheus.Counter
	Fallbacks    prometheus.Counter
	EmptyResults prometheus.Counter
	Duration     prometheus.Histogram
	DatasetRows  prometheus.Gauge
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()

	queries := prometheus.NewCounter(prometheus.CounterOpts{Name: "sourcelens_queries_total"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{Name: "sourcelens_fallback_total"})
	empty := prometheus.NewCounter(prometheus.CounterOpts{Name: "sourcelens_empty_results_total"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sourcelens_query_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	rows := prometheus.NewGauge(prometheus.GaugeOpts{Name: "sourcelens_dataset_rows"})

	r.MustRegister(queries, fallbacks, empty, duration, rows)
	return &Metrics{
		reg:          r,
		Queries:      queries,
		Fallbacks:    fallbacks,
		EmptyResults: empty,
		Duration:     duration,
		DatasetRows:  rows,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
