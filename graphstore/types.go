// SPDX-License-Identifier: MIT
// Package graphstore defines the Node, Edge and Store types and the
// sentinel errors returned by store lookups.
//
// Errors:
//
//	ErrNodeNotFound - requested node id does not exist (see NodeNotFoundError).
//	ErrEdgeNotFound - no direct edge between two nodes (see EdgeNotFoundError).
//	ErrBadWeight    - negative, NaN or infinite edge weight.
package graphstore

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph store operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("graphstore: node not found")

	// ErrEdgeNotFound indicates there is no directed edge between two nodes.
	ErrEdgeNotFound = errors.New("graphstore: edge not found")

	// ErrBadWeight indicates an edge weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("graphstore: bad edge weight")
)

// NodeNotFoundError carries the offending id of a failed node lookup.
// It unwraps to ErrNodeNotFound.
type NodeNotFoundError struct {
	ID int
}

func (e *NodeNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: id %d", ErrNodeNotFound.Error(), e.ID)
}

func (e *NodeNotFoundError) Unwrap() error { return ErrNodeNotFound }

// EdgeNotFoundError carries the endpoints of a failed edge lookup.
// It unwraps to ErrEdgeNotFound.
type EdgeNotFoundError struct {
	From, To int
}

func (e *EdgeNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d→%d", ErrEdgeNotFound.Error(), e.From, e.To)
}

func (e *EdgeNotFoundError) Unwrap() error { return ErrEdgeNotFound }

// Node is a stored vertex: a dense id in [0, NodeCount()) and an opaque payload.
type Node[T any] struct {
	// ID is assigned by the store at insertion time and never changes.
	ID int

	// Payload is the caller's data. The store never inspects or mutates it.
	Payload T
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   int     // source node id
	To     int     // destination node id
	Weight float64 // non-negative, finite
}

// Option configures a Store before creation.
type Option func(*Options)

// Options holds Store construction parameters.
type Options struct {
	// Capacity preallocates the node arena. Zero means no preallocation.
	Capacity int
}

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// WithCapacity preallocates room for n nodes.
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("graphstore: WithCapacity(%d): capacity must be non-negative", n))
	}
	return func(o *Options) { o.Capacity = n }
}

// Store is an in-memory directed graph with dense integer node ids.
//
// Nodes live in an arena indexed by id; adjacency[id] holds the outgoing
// edges of node id in insertion order. Node removal is not supported, so ids
// are never reused and need no generation check. If removal is ever added,
// ids must gain a liveness tag before being handed out again.
//
// mu guards nodes and adjacency. All methods are safe for concurrent use.
type Store[T any] struct {
	mu sync.RWMutex

	nodes     []Node[T] // id → node
	adjacency [][]Edge  // id → outgoing edges
	edgeCount int
}

// NewStore creates an empty Store configured by opts.
// Complexity: O(capacity).
func NewStore[T any](opts ...Option) *Store[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store[T]{
		nodes:     make([]Node[T], 0, cfg.Capacity),
		adjacency: make([][]Edge, 0, cfg.Capacity),
	}
}
