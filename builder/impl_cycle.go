// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1) mod n in ascending i; the ring is one-way.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed n-node ring C_n.
func Cycle(n int) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := addNodes(s, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(s, cfg, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
