// SPDX-License-Identifier: MIT
// Package: lpath/builder
//
// impl_random.go - RandomSparse, RandomEdges and AverageDegree constructors.
//
// Models:
//   - RandomSparse(n, p): G(n,p). One Bernoulli trial per admissible pair;
//     directed ⇒ ordered pairs (i,j), undirected ⇒ unordered pairs i<j.
//     Self-loop trials (i,i) happen only with WithSelfLoops.
//   - RandomEdges(n, m): G(n,M) with replacement. m endpoint pairs are drawn
//     uniformly and emitted in ascending (u,v) order; duplicates are kept,
//     so the result may be a multigraph.
//   - AverageDegree(n, d): RandomEdges(n, round(n·d/2)).
//
// Determinism:
//   - Trials/draws consume cfg.rng in a fixed order; fixed seed ⇒ identical graph.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lpath/core"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodRandomEdges   = "RandomEdges"
	methodAverageDegree = "AverageDegree"

	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomSparse returns a Constructor sampling G(n,p) over n fresh vertices.
// Requires n ≥ 1, 0 ≤ p ≤ 1, and a random source when 0 < p < 1.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate before any mutation.
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices.
		base, err := appendVertices(methodRandomSparse, g, n)
		if err != nil {
			return err
		}

		// 3) Trials in stable order: i asc, j asc.
		var (
			i, j     int
			keep     bool
			directed = g.Directed()
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				if !directed && j < i {
					continue
				}
				switch {
				case p == probMax:
					keep = true
				case cfg.rng == nil: // p == 0
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addArc(methodRandomSparse, g, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomEdges returns a Constructor drawing m endpoint pairs uniformly with
// replacement over n fresh vertices. Without WithSelfLoops a drawn pair (v,v)
// is redrawn. Requires n ≥ 1, m ≥ 0 and a random source when m > 0.
//
// Complexity: O(m log m).
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomEdges, n, minRandomVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < min=0: %w", methodRandomEdges, m, ErrTooFewVertices)
		}
		if m > 0 && n == 1 && !cfg.selfLoops {
			return fmt.Errorf("%s: m=%d arcs on a single vertex without self-loops: %w",
				methodRandomEdges, m, ErrTooManyEdges)
		}
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		base, err := appendVertices(methodRandomEdges, g, n)
		if err != nil {
			return err
		}

		pairs := make([][2]int, 0, m)
		var u, v int
		for len(pairs) < m {
			u = cfg.rng.Intn(n)
			v = cfg.rng.Intn(n)
			if u == v && !cfg.selfLoops {
				continue
			}
			pairs = append(pairs, [2]int{u, v})
		}
		sort.Slice(pairs, func(a, b int) bool {
			if pairs[a][0] != pairs[b][0] {
				return pairs[a][0] < pairs[b][0]
			}
			return pairs[a][1] < pairs[b][1]
		})

		for _, e := range pairs {
			if err = addArc(methodRandomEdges, g, base, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// AverageDegree returns RandomEdges(n, round(n·d/2)); d must be non-negative.
func AverageDegree(n int, d float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%s: d=%g < min=0: %w", methodAverageDegree, d, ErrTooFewVertices)
		}
		m := int(math.Round(float64(n) * d / 2))
		if err := RandomEdges(n, m)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodAverageDegree, err)
		}

		return nil
	}
}
