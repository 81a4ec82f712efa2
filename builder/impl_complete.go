// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Directed K_n: every ordered pair (i,j), i≠j, emitted i asc then j asc.
//   - n(n-1) edges, no self-loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := addNodes(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(s, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
