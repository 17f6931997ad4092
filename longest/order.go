package longest

import (
	"sort"

	"github.com/katalvlaran/lpath/core"
)

// adjView presents a snapshot adjacency table as a core.View.
type adjView [][]int

func (a adjView) Order() int { return len(a) }

func (a adjView) Neighbors(v int) []int { return a[v] }

// indexOrder returns the roots 0..n-1.
func indexOrder(n int) []int {
	roots := make([]int, n)
	for i := range roots {
		roots[i] = i
	}

	return roots
}

// inDegreeOrder returns the vertices sorted by descending in-degree, ties
// broken by ascending index. Frequently targeted vertices come first, so
// their bounds are known by the time other roots reach them.
//
// Complexity: O(E + V log V).
func inDegreeOrder(adj [][]int) []int {
	deg := core.InDegrees(adjView(adj))
	roots := indexOrder(len(adj))
	sort.SliceStable(roots, func(i, j int) bool {
		return deg[roots[i]] > deg[roots[j]]
	})

	return roots
}
