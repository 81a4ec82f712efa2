// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Node/edge lifecycle and read-only queries.
//
// Determinism:
//   - Nodes() returns nodes in id order.
//   - Neighbors() and Edges() preserve edge insertion order.
//
// Concurrency:
//   - Writers take mu.Lock, readers take mu.RLock.
//   - Every slice returned to callers is a copy; callers can never alias store internals.

package graphstore

import (
	"fmt"
	"math"
)

// AddNode appends a node carrying payload and returns its id.
// Ids are assigned sequentially starting at 0.
//
// Complexity: O(1) amortized.
func (s *Store[T]) AddNode(payload T) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := len(s.nodes)
	s.nodes = append(s.nodes, Node[T]{ID: id, Payload: payload})
	s.adjacency = append(s.adjacency, nil)

	return id
}

// AddEdge appends the directed edge from → to with the given weight to the
// adjacency list of from. Parallel edges and self-loops are allowed.
//
// Errors:
//   - *NodeNotFoundError if from or to is absent (from is checked first).
//   - ErrBadWeight if weight is negative, NaN or infinite.
//
// Complexity: O(1) amortized.
func (s *Store[T]) AddEdge(from, to int, weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %d→%d weight=%g", ErrBadWeight, from, to, weight)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasNodeLocked(from) {
		return &NodeNotFoundError{ID: from}
	}
	if !s.hasNodeLocked(to) {
		return &NodeNotFoundError{ID: to}
	}

	s.adjacency[from] = append(s.adjacency[from], Edge{From: from, To: to, Weight: weight})
	s.edgeCount++

	return nil
}

// Node returns the node with the given id, or *NodeNotFoundError.
// Complexity: O(1).
func (s *Store[T]) Node(id int) (Node[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasNodeLocked(id) {
		return Node[T]{}, &NodeNotFoundError{ID: id}
	}

	return s.nodes[id], nil
}

// HasNode reports whether id refers to a stored node.
func (s *Store[T]) HasNode(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasNodeLocked(id)
}

// Edge returns the first directed edge from → to in insertion order.
// Lookup is directional: an edge a→b says nothing about b→a.
//
// Errors:
//   - *NodeNotFoundError if either endpoint is absent.
//   - *EdgeNotFoundError if both exist but are not directly connected.
//
// Complexity: O(out-degree(from)).
func (s *Store[T]) Edge(from, to int) (Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasNodeLocked(from) {
		return Edge{}, &NodeNotFoundError{ID: from}
	}
	if !s.hasNodeLocked(to) {
		return Edge{}, &NodeNotFoundError{ID: to}
	}

	for _, e := range s.adjacency[from] {
		if e.To == to {
			return e, nil
		}
	}

	return Edge{}, &EdgeNotFoundError{From: from, To: to}
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
// A node without outgoing edges yields an empty, non-nil slice.
//
// Complexity: O(out-degree(id)).
func (s *Store[T]) Neighbors(id int) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasNodeLocked(id) {
		return nil, &NodeNotFoundError{ID: id}
	}

	out := make([]Edge, len(s.adjacency[id]))
	copy(out, s.adjacency[id])

	return out, nil
}

// NodeCount returns the number of stored nodes.
func (s *Store[T]) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// EdgeCount returns the number of stored edges, parallel edges included.
func (s *Store[T]) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeCount
}

// Nodes returns a copy of all nodes in id order.
// Complexity: O(V).
func (s *Store[T]) Nodes() []Node[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Node[T], len(s.nodes))
	copy(out, s.nodes)

	return out
}

// Edges returns every edge ordered by source id, then insertion order.
// Complexity: O(V + E).
func (s *Store[T]) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, 0, s.edgeCount)
	for _, adj := range s.adjacency {
		out = append(out, adj...)
	}

	return out
}

// hasNodeLocked reports id membership. Caller must hold mu.
func (s *Store[T]) hasNodeLocked(id int) bool {
	return id >= 0 && id < len(s.nodes)
}
