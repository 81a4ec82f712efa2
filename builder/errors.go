// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not proceed, e.g. a nil
// constructor was passed to BuildStore.
var ErrConstructFailed = errors.New("builder: construction failed")
