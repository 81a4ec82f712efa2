// Package dijkstra computes the minimum-cost path between two nodes of a
// directed graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) runs Dijkstra's algorithm from start and
//     stops as soon as end is finalized, returning the node sequence
//     start..end and its total cost.
//   - The frontier is seeded with every node of the graph (start at cost 0,
//     all others at +Inf) and ordered by (tentative cost, node id), so equal
//     costs are always resolved the same way.
//   - Dead ends, nodes without outgoing edges other than the target, are
//     discarded without being finalized.
//
// Algorithm:
//
//  1. Select the frontier entry with the smallest (cost, id).
//  2. If it has no outgoing edges and is not the end node, drop it and repeat.
//  3. If it is the end node, finalize it and rebuild the path by following
//     predecessors back to the start.
//  4. Otherwise relax each edge u→v: if cost(u)+w < cost(v), set cost(v) and
//     predecessor(v)=u. Finalize u and repeat.
//  5. If the frontier empties, or only +Inf entries remain, end is
//     unreachable.
//
// Result semantics:
//
//   - Found path:   Result.Path = [start, ..., end], Result.Cost = summed weights.
//   - Self path:    start == end yields [start] with cost 0.
//   - Unreachable:  Result.Path == nil, Result.Cost == +Inf, err == nil.
//
// Errors:
//
//   - ErrNilGraph:   g is nil.
//   - *graphstore.NodeNotFoundError (errors.Is graphstore.ErrNodeNotFound):
//     start or end does not exist. The computation never starts.
//   - ErrNeighbors:  the graph failed to enumerate edges mid-run.
//
// Negative weights are not supported; graphstore.Store rejects them at
// insertion time.
//
// Observability:
//
//   - Debug logs through log/slog (WithLogger, or a logger stored in the
//     context passed to ShortestPathContext).
//   - Prometheus collectors via NewMetrics + WithMetrics.
//   - One OpenTelemetry span per computation (WithTracer, or the global
//     provider).
//   - Hooks WithOnFinalize, WithOnPrune and WithOnRelax for custom tracing.
//
// Concurrency:
//
// Each call owns a fresh computation context (frontier, entries, stats);
// nothing is kept between calls. Any number of computations may run
// concurrently over the same graph as long as nobody mutates it meanwhile.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra
