// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds n nodes, then directed edges base+0→base+1→…→base+n-1.
//   - The last node is a dead end.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addNodes(s, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(s, cfg, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
