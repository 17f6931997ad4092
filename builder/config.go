// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (pure/deterministic unless seeded)
//   • selfLoops = false (random generators never emit v→v)
//
// newBuilderConfig applies options in-order (later overrides earlier).

package builder

import "math/rand"

// builderConfig is the resolved, immutable view of all BuilderOption values.
type builderConfig struct {
	rng       *rand.Rand // stochastic source; nil means "not seeded"
	selfLoops bool       // RandomSparse/RandomEdges may emit v→v
}

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// newBuilderConfig resolves opts into a builderConfig.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
