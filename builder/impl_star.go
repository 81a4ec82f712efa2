// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first new node is the hub labeled CenterLabel; the n-1 leaves use cfg.idFn.
//   - Edges point outward hub→leaf, so every leaf is a dead end.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graphstore"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// CenterLabel is the payload of the hub node created by Star.
const CenterLabel = "Center"

// Star returns a Constructor that builds an outward star with n nodes.
func Star(n int) Constructor {
	return func(s *graphstore.Store[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := s.AddNode(CenterLabel)
		for i := 1; i < n; i++ {
			leaf := s.AddNode(cfg.idFn(hub + i))
			if err := addEdge(s, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
