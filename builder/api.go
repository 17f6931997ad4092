// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own fresh vertices, so composing constructors
//     yields a disjoint union with stable, predictable indices.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching g and
// emit arcs in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Callers branch with errors.Is against ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrTooManyEdges, ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// appendVertices adds n vertices to g and returns the index of the first one.
func appendVertices(method string, g *core.Graph, n int) (int, error) {
	base, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddVertices(%d): %v: %w", method, n, err, ErrConstructFailed)
	}

	return base, nil
}

// addArc inserts base+u → base+v, mapping core failures onto ErrConstructFailed.
func addArc(method string, g *core.Graph, base, u, v int) error {
	if err := g.AddEdge(base+u, base+v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %v: %w", method, base+u, base+v, err, ErrConstructFailed)
	}

	return nil
}
