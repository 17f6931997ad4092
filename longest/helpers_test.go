package longest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/builder"
	"github.com/katalvlaran/lpath/core"
)

// arc is a directed edge u→v used to describe fixtures.
type arc struct{ u, v int }

// graphOf builds an n-vertex graph from arcs in the given order.
func graphOf(t testing.TB, n int, directed bool, arcs ...arc) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithDirected(directed))
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.u, a.v))
	}

	return g
}

// randomGraph builds a seeded G(n,p) fixture.
func randomGraph(t testing.TB, n int, p float64, directed bool, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

// adjacency copies the neighbor lists of g.
func adjacency(g core.View) [][]int {
	adj := make([][]int, g.Order())
	for v := range adj {
		adj[v] = append([]int(nil), g.Neighbors(v)...)
	}

	return adj
}

// longestFrom returns the vertex count of the longest simple path that starts
// at v and avoids every vertex marked in used. It is the plain recursive
// enumeration, independent of the engine.
func longestFrom(adj [][]int, v int, used []bool) int {
	used[v] = true
	best := 0
	for _, w := range adj[v] {
		if used[w] {
			continue
		}
		if l := longestFrom(adj, w, used); l > best {
			best = l
		}
	}
	used[v] = false

	return best + 1
}

// optimum returns the vertex count of a longest simple path of adj.
func optimum(adj [][]int) int {
	used := make([]bool, len(adj))
	best := 0
	for v := range adj {
		if l := longestFrom(adj, v, used); l > best {
			best = l
		}
	}

	return best
}
