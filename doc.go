// Package shortpath is an in-memory directed graph store plus a
// target-directed Dijkstra engine.
//
// Layout:
//
//	graphstore/         Store[T]: dense node ids, directed weighted edges, typed not-found errors
//	dijkstra/           ShortestPath: (weight, id) frontier, dead-end pruning, hooks, metrics, tracing
//	builder/            deterministic fixtures (Path, Cycle, Star, Complete, Grid, RandomSparse)
//	internal/graphfile/ HCL graph files and the built-in a..h graph
//	internal/cli/       flag parsing and logger setup for cmd/shortpath
//	cmd/shortpath/      prints the cheapest path between two labeled nodes
//
// Quick start:
//
//	g := graphstore.NewStore[string]()
//	a, b := g.AddNode("a"), g.AddNode("b")
//	_ = g.AddEdge(a, b, 3)
//	res, err := dijkstra.ShortestPath(g, a, b)
//	// res.IDs() == []int{0, 1}, res.Cost == 3
//
// An unreachable end is a normal result: res.Found() is false and res.Cost
// is +Inf. Missing start or end ids fail with *graphstore.NodeNotFoundError.
package shortpath
