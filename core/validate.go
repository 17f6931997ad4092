package core

import "fmt"

// Validate checks the View contract: every neighbor index lies in [0, N).
// Searches call it once up front so that a malformed view fails before the
// first extension instead of somewhere inside the hot loop.
//
// Complexity: O(V+E).
func Validate(view View) error {
	if view == nil {
		return ErrNilView
	}
	n := view.Order()
	if n < 0 {
		return ErrNegativeOrder
	}
	var v, i, w int
	for v = 0; v < n; v++ {
		for i, w = range view.Neighbors(v) {
			if w < 0 || w >= n {
				return fmt.Errorf("core: neighbor %d of vertex %d is %d, want [0,%d): %w",
					i, v, w, n, ErrVertexOutOfRange)
			}
		}
	}

	return nil
}

// InDegrees counts, for every vertex of view, the adjacency entries that
// target it. The view is assumed valid.
//
// Complexity: O(V+E).
func InDegrees(view View) []int {
	n := view.Order()
	deg := make([]int, n)
	for v := 0; v < n; v++ {
		for _, w := range view.Neighbors(v) {
			deg[w]++
		}
	}

	return deg
}

// HasArc reports whether v is a successor of u in view.
//
// Complexity: O(deg(u)).
func HasArc(view View, u, v int) bool {
	if u < 0 || u >= view.Order() {
		return false
	}

	return hasArc(view, u, v)
}

func hasArc(view View, u, v int) bool {
	for _, w := range view.Neighbors(u) {
		if w == v {
			return true
		}
	}

	return false
}
