// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: n=... : %w").
//   • Option constructors (WithX) panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, m, degree) is below the
// minimum accepted by the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved configuration (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates that RandomEdges or AverageDegree asked for more
// distinct arcs than the vertex set can hold.
var ErrTooManyEdges = errors.New("builder: edge count exceeds capacity")

// ErrConstructFailed indicates a programmer error at composition time
// (nil constructor) or a core mutation failure surfaced by a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
