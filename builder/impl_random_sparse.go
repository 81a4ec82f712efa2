// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like directed generator: include each ordered pair (i,j),
//     i≠j, independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Each trial draws rng.Float64()
//     before any weight is drawn for that pair, so a fixed seed always yields
//     the same edge set and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addNodes(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// p ∈ {0,1} without an RNG is deterministic.
				include := p == probMax
				if cfg.rng != nil {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(s, cfg, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
