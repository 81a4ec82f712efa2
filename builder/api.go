// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildStore(sopts, bopts, cons...). Creates the store, resolves cfg, runs cons in order.
//   - Constructors append nodes after whatever the store already holds, so they compose.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical stores.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

// Constructor applies a deterministic topology to s using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes after the current last id and label them with cfg.idFn.
//   - Emit edges in a stable, documented order.
type Constructor func(s *graphstore.Store[string], cfg builderConfig) error

// BuildStore creates a new graphstore.Store with sopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildStore: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildStore(sopts []graphstore.Option, bopts []BuilderOption, cons ...Constructor) (*graphstore.Store[string], error) {
	s := graphstore.NewStore[string](sopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildStore: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildStore: %w", err)
		}
	}

	return s, nil
}

// addNodes appends n nodes labeled cfg.idFn(base+i) and returns base,
// the id of the first new node.
func addNodes(s *graphstore.Store[string], cfg builderConfig, n int) int {
	base := s.NodeCount()
	for i := 0; i < n; i++ {
		s.AddNode(cfg.idFn(base + i))
	}

	return base
}

// addEdge draws a weight from cfg and inserts u→v, wrapping failures with method context.
func addEdge(s *graphstore.Store[string], cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := s.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
