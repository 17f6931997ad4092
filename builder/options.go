// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// options.go - functional options for BuildGraph.
//
// Policy: option constructors validate their input and panic on nonsense
// (nil sources). Constructors themselves never panic.

package builder

import "math/rand"

// WithRand injects a caller-owned random source. The source is used as-is and
// is advanced by stochastic constructors; do not share it across goroutines.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh deterministic source seeded with seed
// (seed==0 maps to a fixed default so that the zero value stays reproducible).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rngFromSeed(seed) }
}

// WithSelfLoops lets RandomSparse and RandomEdges emit v→v arcs.
// Self-loops never lengthen a simple path; they exist to exercise the
// search engines' membership checks.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) { c.selfLoops = true }
}
