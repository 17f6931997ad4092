package longest

import "github.com/bits-and-blooms/bitset"

// reachOracle computes the reachability bound used by BranchAndBound:
// the number of vertices reachable from a start vertex without entering an
// excluded vertex. Any simple path continuing from start visits only such
// vertices, so the count never underestimates the possible extension.
//
// The traversal is iterative. Each vertex is marked at most once and pushes
// its neighbor list once, so the stack never holds more than E+1 entries;
// both the stack and the visited set are allocated once and reused.
type reachOracle struct {
	adj     [][]int
	stack   []int
	visited *bitset.BitSet
}

// newReachOracle sizes the scratch area for adj.
//
// Complexity: O(V) time to count entries, O(V+E) space.
func newReachOracle(adj [][]int) *reachOracle {
	var entries int
	for _, row := range adj {
		entries += len(row)
	}

	return &reachOracle{
		adj:     adj,
		stack:   make([]int, 0, entries+1),
		visited: bitset.New(uint(len(adj))),
	}
}

// bound returns how many vertices are reachable from start when every vertex
// in exclude is treated as absent. start itself counts when not excluded.
//
// Complexity: O(V+E) time, no allocation.
func (o *reachOracle) bound(start int, exclude *bitset.BitSet) int {
	// 1) Excluded vertices behave as already visited.
	exclude.Copy(o.visited)

	// 2) Depth-first flood fill over the induced subgraph.
	stack := append(o.stack[:0], start)
	var (
		count int
		v, w  int
	)
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if o.visited.Test(uint(v)) {
			continue
		}
		o.visited.Set(uint(v))
		count++
		for _, w = range o.adj[v] {
			if !o.visited.Test(uint(w)) {
				stack = append(stack, w)
			}
		}
	}
	o.stack = stack[:0]

	return count
}
