package longest

// boundUnknown marks a bound-table entry whose root is not yet exhausted.
const boundUnknown = -1

// newBoundTable returns a table of n unknown bounds.
func newBoundTable(n int) []int {
	t := make([]int, n)
	for i := range t {
		t[i] = boundUnknown
	}

	return t
}

// pruneByTable skips next when its cached bound shows that no path through
// it can beat the incumbent: depth + bounds[next] ≤ best.
//
// A pruned continuation could still have reached depth + bounds[next]
// vertices, so the current root's bound is raised to at least that value.
// Without this the root would commit a bound tighter than the truth.
func (e *engine) pruneByTable(next int) bool {
	b := e.bounds[next]
	best := e.best.length()
	if best == 0 || b == boundUnknown {
		return false
	}
	limit := e.state.depth + b
	if limit > best {
		return false
	}
	if limit > e.currentBound {
		e.currentBound = limit
	}
	e.stats.Pruned++

	return true
}

// commitBound stores the bound of a fully exhausted root, exactly once.
//
// currentBound is at least the vertex count of every maximal path checked
// at a backtrack point under this root and at least depth + bound of every
// pruned continuation, so it bounds every simple path starting at root.
func (e *engine) commitBound(root int) {
	e.bounds[root] = e.currentBound
}
