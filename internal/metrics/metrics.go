// Package metrics exports Prometheus instrumentation for the run
// scheduler and decision engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all scheduler and decision instrumentation.
type Metrics struct {
	RunsQueued   prometheus.Gauge
	RunsInFlight prometheus.Gauge
	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram

	EvaluatorCalls *prometheus.CounterVec

	ProgressConflicts prometheus.Counter

	registry *prometheus.Registry
}

// New creates the metric set on a fresh registry.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RunsQueued: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "runs_queued",
				Help:      "Number of runs waiting for dispatch",
			},
		),
		RunsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "runs_in_flight",
				Help:      "Number of runs currently being evaluated",
			},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total finalized runs by status",
			},
			[]string{"status"},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall time from dispatch to finalization",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 90, 120},
			},
		),
		EvaluatorCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluator_calls_total",
				Help:      "Total dimension evaluations by category and outcome",
			},
			[]string{"category", "outcome"},
		),
		ProgressConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "progress_conflicts_total",
				Help:      "Total progress updates abandoned after CAS conflicts",
			},
		),
	}
}

// Handler returns an HTTP handler exposing this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics endpoint on addr. Blocks until the server
// fails.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
