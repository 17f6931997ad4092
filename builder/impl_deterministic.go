// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// impl_deterministic.go - Empty, Path, Cycle and Complete constructors.
//
// Emission order (stable):
//   - Path:     i→i+1 for i asc.
//   - Cycle:    i→(i+1)%n for i asc (closing arc last).
//   - Complete: directed ⇒ every ordered pair (i,j), i≠j, i asc then j asc;
//     undirected ⇒ unordered pairs i<j (core mirrors them).
//
// Longest simple path facts used by tests:
//   - Path(n), Cycle(n), Complete(n) all contain a Hamiltonian path (n-1 arcs).
//   - Empty(n) has none beyond a single vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lpath/core"
)

const (
	methodEmpty    = "Empty"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minEmptyVertices    = 0
	minPathVertices     = 1
	minCycleVertices    = 3
	minCompleteVertices = 1
)

// Empty appends n isolated vertices (n ≥ 0).
// Complexity: O(n).
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minEmptyVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyVertices, ErrTooFewVertices)
		}
		_, err := appendVertices(methodEmpty, g, n)

		return err
	}
}

// Path appends the simple path P_n (n ≥ 1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		base, err := appendVertices(methodPath, g, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addArc(methodPath, g, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle appends the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		base, err := appendVertices(methodCycle, g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addArc(methodCycle, g, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete appends K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		base, err := appendVertices(methodComplete, g, n)
		if err != nil {
			return err
		}

		var i, j int
		directed := g.Directed()
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err = addArc(methodComplete, g, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
