// Package metrics provides Prometheus metrics for the scenario solver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the solver.
type Manager struct {
	namespace        string
	subsystem        string
	durationBuckets  []float64
	iterationBuckets []float64
	registry         *prometheus.Registry

	// Solve outcomes and rejections
	solvesTotal  *prometheus.CounterVec
	rejectsTotal *prometheus.CounterVec

	// Per-solve cost
	solveDuration    prometheus.Histogram
	searchIterations prometheus.Histogram
	hybridTrials     prometheus.Histogram
	refineSweeps     prometheus.Histogram

	// Scenario shape
	eventsPerScenario prometheus.Histogram
	solveMargin       prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "wvwgg",
		subsystem:        "solver",
		durationBuckets:  prometheus.DefBuckets,
		iterationBuckets: prometheus.ExponentialBuckets(10, 10, 6), // 10 .. 1,000,000
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.solvesTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "solves_total",
			Help:      "Total number of completed solves by resolution method",
		},
		[]string{"method"},
	)

	m.rejectsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rejects_total",
			Help:      "Total number of requests rejected before any search",
		},
		[]string{"reason"},
	)

	m.solveDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "solve_duration_milliseconds",
		Help:      "Histogram of end-to-end solve duration in milliseconds",
		Buckets:   m.durationBuckets,
	})

	m.searchIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_iterations",
		Help:      "Histogram of branch-and-bound nodes visited per solve",
		Buckets:   m.iterationBuckets,
	})

	m.hybridTrials = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hybrid_trials",
		Help:      "Histogram of random samples drawn per hybrid fallback",
		Buckets:   m.iterationBuckets,
	})

	m.refineSweeps = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refine_sweeps",
		Help:      "Histogram of hill-climbing sweeps per refined solve",
		Buckets:   []float64{1, 2, 4, 8, 16, 32},
	})

	m.eventsPerScenario = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_per_scenario",
		Help:      "Histogram of remaining skirmishes per solved scenario",
		Buckets:   []float64{1, 2, 5, 10, 20, 35, 50},
	})

	m.solveMargin = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "solve_margin",
		Help:      "Histogram of the final margin of feasible solves",
		Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
	})
}

// Registry exposes the backing registry so callers can gather and render
// the metrics themselves (e.g. the CLI's text dump).
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Default returns the global metrics manager.
func Default() *Manager {
	return globalManager
}

// RecordSolve records one completed solve.
func RecordSolve(method string, durationMs float64) {
	globalManager.solvesTotal.WithLabelValues(method).Inc()
	globalManager.solveDuration.Observe(durationMs)
}

// RecordReject records one request rejected during validation.
func RecordReject(reason string) {
	globalManager.rejectsTotal.WithLabelValues(reason).Inc()
}

// RecordSearchIterations records branch-and-bound nodes visited.
func RecordSearchIterations(n int) {
	globalManager.searchIterations.Observe(float64(n))
}

// RecordHybridTrials records random samples drawn by the hybrid fallback.
func RecordHybridTrials(n int) {
	globalManager.hybridTrials.Observe(float64(n))
}

// RecordRefineSweeps records hill-climbing sweeps spent on a solve.
func RecordRefineSweeps(n int) {
	globalManager.refineSweeps.Observe(float64(n))
}

// RecordScenarioSize records the number of remaining skirmishes.
func RecordScenarioSize(n int) {
	globalManager.eventsPerScenario.Observe(float64(n))
}

// RecordMargin records the final margin of a feasible solve.
func RecordMargin(margin int) {
	globalManager.solveMargin.Observe(float64(margin))
}
