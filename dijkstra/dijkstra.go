// SPDX-License-Identifier: MIT
// Package dijkstra implements a target-directed Dijkstra search over a
// read-only Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Every node is seeded into the frontier once and removed at most once.
//   - Each successful relaxation is one heap.Fix, O(log V).
//   - Space: O(V) for the frontier and the per-node entries.
//
// Notes on implementation choices:
//
//   - The frontier is seeded with every node (start at 0, others at +Inf)
//     and uses decrease-key via heap.Fix instead of lazy duplicates.
//   - Ties on tentative cost are broken by ascending node id.
//   - Dead ends (no outgoing edges, not the end node) are discarded
//     without being finalized.
//   - Once the minimum remaining cost is +Inf nothing else is reachable and
//     the search stops with an empty result.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/shortpath/graphstore"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
)

// ShortestPath computes the minimum-cost path from start to end in g.
// It is ShortestPathContext with context.Background().
func ShortestPath[T any](g Graph[T], start, end int, opts ...Option) (Result[T], error) {
	return ShortestPathContext(context.Background(), g, start, end, opts...)
}

// ShortestPathContext computes the minimum-cost path from start to end in g.
//
// ctx only carries the logger (see internal/ctxlog) and the parent span; the
// computation has no suspension points and always runs to completion.
//
// Returns:
//
//   - Result.Path: nodes from start to end inclusive; nil if end is unreachable.
//   - Result.Cost: summed edge weights along Path; +Inf if unreachable.
//   - err: ErrNilGraph, a *graphstore.NodeNotFoundError for a missing start
//     or end id, or ErrNeighbors if the graph fails mid-run.
//
// An unreachable end node is a normal result, not an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must exist in g.
//  3. end must exist in g.
func ShortestPathContext[T any](ctx context.Context, g Graph[T], start, end int, opts ...Option) (Result[T], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}

	span := startSpan(ctx, cfg.Tracer, start, end)
	began := time.Now()

	res, err := run(g, start, end, cfg, logger)

	endSpan(span, g, res, err)
	cfg.Metrics.observe(res.Found(), res.Stats, err, time.Since(began))

	return res, err
}

// run validates the inputs and executes one computation.
func run[T any](g Graph[T], start, end int, cfg Options, logger *slog.Logger) (Result[T], error) {
	unreachable := Result[T]{Cost: math.Inf(1)}

	if g == nil {
		return unreachable, ErrNilGraph
	}
	if _, err := g.Node(start); err != nil {
		return unreachable, fmt.Errorf("dijkstra: start: %w", err)
	}
	if _, err := g.Node(end); err != nil {
		return unreachable, fmt.Errorf("dijkstra: end: %w", err)
	}

	logger.Debug("dijkstra: computation started", "start", start, "end", end, "nodes", g.NodeCount())

	r := &runner[T]{
		g:        g,
		end:      end,
		cfg:      cfg,
		logger:   logger,
		frontier: newFrontier(g.NodeCount(), start),
	}

	res, err := r.process()
	if err != nil {
		return unreachable, err
	}

	if res.Found() {
		logger.Debug("dijkstra: path found", "start", start, "end", end, "cost", res.Cost, "hops", len(res.Path)-1)
	} else {
		logger.Debug("dijkstra: end unreachable", "start", start, "end", end)
	}

	return res, nil
}

// runner holds the mutable state of a single computation. It is created
// per call and never shared, so concurrent computations over the same
// graph cannot observe each other.
type runner[T any] struct {
	g        Graph[T]
	end      int
	cfg      Options
	logger   *slog.Logger
	frontier *frontier
	stats    Stats
}

// process is the main loop: select, prune, goal check, relax.
//
// Loop termination conditions:
//
//   - The end node reaches the top of the frontier (path found).
//   - The frontier is empty, or its minimum is +Inf (unreachable).
func (r *runner[T]) process() (Result[T], error) {
	f := r.frontier

	for f.Len() > 0 {
		// 1) Select the minimum (weight, id) entry.
		u := f.top()
		e := &f.entries[u]

		// Everything left is unreachable from start.
		if math.IsInf(e.weight, 1) {
			break
		}

		edges, err := r.g.Neighbors(u)
		if err != nil {
			return Result[T]{}, fmt.Errorf("%w: node %d: %w", ErrNeighbors, u, err)
		}

		// 2) Dead end: it can never lead anywhere, drop it unfinalized.
		if len(edges) == 0 && u != r.end {
			heap.Pop(f)
			e.state = pruned
			r.stats.Pruned++
			r.cfg.OnPrune(u)
			r.logger.Debug("dijkstra: dead end pruned", "node", u, "cost", e.weight)
			continue
		}

		// 3) Goal: the end node's tentative cost is now optimal.
		if u == r.end {
			r.finalize(u)
			return r.buildPath()
		}

		// 4) Relax every outgoing edge, then finalize u.
		r.relax(u, edges)
		r.finalize(u)
	}

	return Result[T]{Cost: math.Inf(1), Stats: r.stats}, nil
}

// relax lowers the tentative cost of each neighbor reachable more cheaply through u.
// Neighbors that are already finalized or pruned are left alone.
func (r *runner[T]) relax(u int, edges []graphstore.Edge) {
	f := r.frontier
	base := f.entries[u].weight

	for _, edge := range edges {
		v := &f.entries[edge.To]
		if v.state != inFrontier {
			continue
		}

		candidate := base + edge.Weight
		if candidate >= v.weight {
			continue
		}

		v.weight = candidate
		v.prev = u
		v.hasPrev = true
		heap.Fix(f, v.index)

		r.stats.Relaxations++
		r.cfg.OnRelax(u, edge.To, candidate)
	}
}

// finalize moves u, which must be at the top of the frontier, into the finalized set.
func (r *runner[T]) finalize(u int) {
	heap.Pop(r.frontier)
	e := &r.frontier.entries[u]
	e.state = finalized
	r.stats.Finalized++
	r.cfg.OnFinalize(u, e.weight)
}

// buildPath follows predecessors back from the end node through the
// finalized set and returns the path in start..end order.
func (r *runner[T]) buildPath() (Result[T], error) {
	entries := r.frontier.entries
	cost := entries[r.end].weight

	var ids []int
	for id := r.end; ; {
		ids = append(ids, id)
		e := entries[id]
		if !e.hasPrev {
			break
		}
		id = e.prev
	}

	path := make([]graphstore.Node[T], len(ids))
	for i, id := range ids {
		n, err := r.g.Node(id)
		if err != nil {
			return Result[T]{}, fmt.Errorf("dijkstra: path node: %w", err)
		}
		path[len(ids)-1-i] = n
	}

	return Result[T]{Path: path, Cost: cost, Stats: r.stats}, nil
}
