// Package metrics exposes simulation runs as Prometheus metrics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all simulation metrics on a private Prometheus registry.
type Registry struct {
	RunsTotal        *prometheus.CounterVec
	RunDuration      *prometheus.HistogramVec
	RunTicks         *prometheus.HistogramVec
	BurnoutsTotal    *prometheus.CounterVec
	InfectionsTotal  *prometheus.CounterVec
	TransitionsTotal *prometheus.CounterVec
	RunsInFlight     prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialised.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	labels := []string{"topology", "behavior"}

	r.RunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contagion_runs_total",
			Help: "Total number of completed simulation runs",
		},
		labels,
	)
	r.RunDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contagion_run_duration_seconds",
			Help:    "Wall-clock duration of simulation runs in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		labels,
	)
	r.RunTicks = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contagion_run_ticks",
			Help:    "Number of ticks executed per run",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		},
		labels,
	)
	r.BurnoutsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contagion_burnouts_total",
			Help: "Runs that ended because no vertex remained infected",
		},
		labels,
	)
	r.InfectionsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contagion_infections_total",
			Help: "Infections including seeds",
		},
		labels,
	)
	r.TransitionsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "contagion_transitions_total",
			Help: "State transitions by target compartment",
		},
		[]string{"to"},
	)
	r.RunsInFlight = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "contagion_runs_in_flight",
			Help: "Simulation runs currently executing",
		},
	)

	return r
}

// RecordRun records one finished run.
func (r *Registry) RecordRun(topology, behavior string, ticks, infections int, burnedOut bool, elapsed time.Duration) {
	r.RunsTotal.WithLabelValues(topology, behavior).Inc()
	r.RunDuration.WithLabelValues(topology, behavior).Observe(elapsed.Seconds())
	r.RunTicks.WithLabelValues(topology, behavior).Observe(float64(ticks))
	r.InfectionsTotal.WithLabelValues(topology, behavior).Add(float64(infections))
	if burnedOut {
		r.BurnoutsTotal.WithLabelValues(topology, behavior).Inc()
	}
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
