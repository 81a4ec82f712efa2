// SPDX-License-Identifier: MIT

// Package graphstore provides a small, thread-safe, in-memory directed graph
// with dense integer node ids and generic node payloads.
//
// The Store is the read side consumed by the dijkstra package: it answers
// node lookups, neighbor enumeration and the total node count.
//
// Model:
//
//   - Node ids are dense: the k-th AddNode call returns id k-1. Ids are
//     never reused because nodes cannot be removed.
//   - Edges are directed and weighted. Each edge is owned by its source
//     node's adjacency list and never changes after insertion.
//   - Weights must be finite and non-negative; AddEdge rejects anything
//     else with ErrBadWeight.
//
// Core methods:
//
//	AddNode(payload T) int                      // O(1)
//	AddEdge(from, to int, w float64) error      // O(1)
//	Node(id int) (Node[T], error)               // O(1)
//	Edge(from, to int) (Edge, error)            // O(out-degree)
//	Neighbors(id int) ([]Edge, error)           // O(out-degree), copy
//	NodeCount() int / EdgeCount() int           // O(1)
//	Nodes() []Node[T] / Edges() []Edge          // O(V+E), copies
//
// Errors:
//
// Lookups of missing ids return *NodeNotFoundError and missing connections
// return *EdgeNotFoundError. Both carry the offending ids and unwrap to the
// ErrNodeNotFound / ErrEdgeNotFound sentinels:
//
//	var nf *graphstore.NodeNotFoundError
//	if errors.As(err, &nf) {
//	    log.Printf("unknown node %d", nf.ID)
//	}
//
// Concurrency:
//
// A single sync.RWMutex guards the store. Reads may run concurrently with
// each other; a shortest-path computation expects the store not to be
// mutated while it runs.
package graphstore
