// SPDX-License-Identifier: MIT

// Package builder generates deterministic directed graph fixtures on
// graphstore.Store[string] for tests, examples and benchmarks.
//
// Usage:
//
//	s, err := builder.BuildStore(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.IntUniformWeightFn(1, 9))},
//	    builder.RandomSparse(8, 0.3),
//	)
//
// Constructors:
//
//	Path(n)          n ≥ 2   0→1→…→n-1
//	Cycle(n)         n ≥ 3   0→1→…→n-1→0
//	Star(n)          n ≥ 2   hub→leaf for n-1 leaves
//	Complete(n)      n ≥ 1   every ordered pair i≠j
//	Grid(rows, cols) ≥ 1     4-neighborhood, both directions
//	RandomSparse(n,p)        each ordered pair with probability p
//
// Every constructor appends its nodes after the store's current last id,
// so several constructors can be combined in one BuildStore call. Node
// payloads come from the configured IDFn.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, all wrapped with the constructor name.
package builder
