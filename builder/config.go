// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn      ("0","1","2",...)
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node label strategy: index -> payload.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
