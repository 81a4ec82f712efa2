// SPDX-License-Identifier: MIT
// Package dijkstra defines the graph contract, result types and configuration
// options for the target-directed shortest-path engine.
//
// Options:
//
//	– WithLogger:     slog.Logger for Debug-level progress records.
//	– WithMetrics:    Prometheus collectors updated once per computation.
//	– WithTracer:     OpenTelemetry tracer for the per-computation span.
//	– WithOnFinalize: hook called when a node's cost becomes final.
//	– WithOnPrune:    hook called when a dead end is discarded.
//	– WithOnRelax:    hook called when a neighbor's tentative cost improves.
//
// Errors (sentinel):
//
//	– ErrNilGraph   if the provided graph is nil.
//	– ErrNeighbors  if the graph fails to enumerate a node's edges mid-run.
//
// Missing start/end ids surface as *graphstore.NodeNotFoundError.
package dijkstra

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/shortpath/graphstore"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNeighbors indicates the graph failed to enumerate a node's edges.
	ErrNeighbors = errors.New("dijkstra: neighbor enumeration failed")
)

// Graph is the read-only view the engine consumes.
// *graphstore.Store[T] satisfies it.
//
// Node ids must be dense in [0, NodeCount()). The graph must not be mutated
// while a computation is running.
type Graph[T any] interface {
	Node(id int) (graphstore.Node[T], error)
	Neighbors(id int) ([]graphstore.Edge, error)
	NodeCount() int
}

// Stats counts the work done by one computation.
type Stats struct {
	Finalized   int // nodes moved to the finalized set
	Pruned      int // dead ends discarded from the frontier
	Relaxations int // successful tentative-cost improvements
}

// Result is the outcome of one shortest-path computation.
//
// When the end node is unreachable, Path is nil and Cost is +Inf.
type Result[T any] struct {
	Path  []graphstore.Node[T] // start..end inclusive
	Cost  float64              // sum of edge weights along Path
	Stats Stats
}

// Found reports whether a path exists.
func (r Result[T]) Found() bool { return len(r.Path) > 0 }

// IDs returns the node ids along the path.
func (r Result[T]) IDs() []int {
	if len(r.Path) == 0 {
		return nil
	}
	ids := make([]int, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID
	}
	return ids
}

// Option configures a computation via functional arguments.
type Option func(*Options)

// Options holds the logger, observability sinks and hooks of a computation.
type Options struct {
	// Logger receives Debug records. Nil means: take it from the context.
	Logger *slog.Logger

	// Metrics is updated once per computation. Nil disables metrics.
	Metrics *Metrics

	// Tracer starts the per-computation span. Nil means the global provider.
	Tracer trace.Tracer

	// OnFinalize is called with a node id and its final cost.
	OnFinalize func(id int, cost float64)

	// OnPrune is called with the id of a discarded dead end.
	OnPrune func(id int)

	// OnRelax is called when the tentative cost of to improves via from.
	OnRelax func(from, to int, cost float64)
}

// DefaultOptions returns Options with no-op hooks and no sinks.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(int, float64) {},
		OnPrune:    func(int) {},
		OnRelax:    func(int, int, float64) {},
	}
}

// WithLogger sets the logger used for Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer sets the tracer used for the computation span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithOnFinalize registers a callback run when a node's cost becomes final.
func WithOnFinalize(fn func(id int, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnPrune registers a callback run when a dead end is discarded.
func WithOnPrune(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(from, to int, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
