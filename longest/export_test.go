package longest

import "github.com/bits-and-blooms/bitset"

// ReachBound exposes the BranchAndBound oracle: the number of vertices
// reachable from start while every vertex of exclude is absent.
func ReachBound(adj [][]int, start int, exclude ...int) int {
	o := newReachOracle(adj)
	ex := bitset.New(uint(len(adj)))
	for _, v := range exclude {
		ex.Set(uint(v))
	}

	return o.bound(start, ex)
}

// InDegreeOrder exposes the FastBound root order.
func InDegreeOrder(adj [][]int) []int { return inDegreeOrder(adj) }
