package longest

// pruneByReach skips next when even visiting every vertex reachable from it
// outside the current path could not produce a path longer than the
// incumbent: depth + reach(next) ≤ best.
//
// The bound is admissible, so no optimal path is ever discarded. It is only
// evaluated once an incumbent exists.
func (e *engine) pruneByReach(next int) bool {
	best := e.best.length()
	if best == 0 {
		return false
	}
	e.stats.OracleCalls++
	if e.state.depth+e.oracle.bound(next, e.state.member) <= best {
		e.stats.Pruned++
		return true
	}

	return false
}
