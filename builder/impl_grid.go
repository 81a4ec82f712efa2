// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes in row-major order labeled "r,c" (fixed scheme, cfg.idFn is not used).
//   - For each (r,c): Right then Bottom neighbor, each in both directions
//     (u→v then v→u) with one drawn weight per pair.
//
// Determinism:
//   • Stable node order: r asc, then c asc.
//   • Stable edge order as above.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridLabel returns the payload Grid assigns to cell (r, c).
func GridLabel(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := s.NodeCount()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.AddNode(GridLabel(r, c))
			}
		}
		cell := func(r, c int) int { return base + r*cols + c }

		link := func(u, v int) error {
			w := cfg.weightFn(cfg.rng)
			if err := s.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodGrid, u, v, w, err)
			}
			if err := s.AddEdge(v, u, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", methodGrid, v, u, w, err)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
