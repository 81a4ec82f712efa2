// SPDX-License-Identifier: MIT

package dijkstra

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics about shortest-path computations.
//
// Metrics exposed (namespace "shortpath", subsystem "dijkstra"):
//
//   - computations_total (counter), label outcome: found, unreachable, error.
//   - relaxations_total (counter): successful tentative-cost improvements.
//   - pruned_total (counter): dead ends discarded from the frontier.
//   - finalized_nodes (histogram): nodes finalized per computation.
//   - duration_seconds (histogram): wall time per computation.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	m := dijkstra.NewMetrics(reg)
//	res, err := dijkstra.ShortestPath(g, a, f, dijkstra.WithMetrics(m))
//
// A nil *Metrics is valid and records nothing. Prometheus collectors are
// safe for concurrent use, so one Metrics may serve parallel computations.
type Metrics struct {
	computations *prometheus.CounterVec
	relaxations  prometheus.Counter
	pruned       prometheus.Counter
	finalized    prometheus.Histogram
	duration     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with registry.
// A nil registry uses prometheus.DefaultRegisterer.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortpath",
			Subsystem: "dijkstra",
			Name:      "computations_total",
			Help:      "Shortest-path computations by outcome",
		}, []string{"outcome"}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shortpath",
			Subsystem: "dijkstra",
			Name:      "relaxations_total",
			Help:      "Tentative-cost improvements across all computations",
		}),
		pruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shortpath",
			Subsystem: "dijkstra",
			Name:      "pruned_total",
			Help:      "Dead-end nodes discarded from the frontier",
		}),
		finalized: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shortpath",
			Subsystem: "dijkstra",
			Name:      "finalized_nodes",
			Help:      "Nodes finalized per computation",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 to 16384
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shortpath",
			Subsystem: "dijkstra",
			Name:      "duration_seconds",
			Help:      "Wall time per computation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7), // 1µs to 1s
		}),
	}
}

// observe records one finished computation.
func (m *Metrics) observe(found bool, stats Stats, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(outcome(found, err)).Inc()
	m.duration.Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	m.relaxations.Add(float64(stats.Relaxations))
	m.pruned.Add(float64(stats.Pruned))
	m.finalized.Observe(float64(stats.Finalized))
}
