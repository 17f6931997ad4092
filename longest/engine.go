// Package longest - the shared backtracking engine.
//
// The engine alternates between two states:
//
//	EXTEND:    scan adj[v][cursor:] for the first neighbor that is not on the
//	           path and survives the strategy's pruning test; push it.
//	BACKTRACK: no such neighbor. Score the path if it beats the incumbent,
//	           then pop (or, at depth 1, finish the current root).
//
// Strategies differ only in their root order, their pruning test and
// whether a Hamiltonian path ends the search; see bnb.go and fastbound.go.
package longest

// outcome tells run why exploration of a root ended.
type outcome uint8

const (
	rootExhausted outcome = iota
	foundHamiltonian
	interrupted
)

// engine holds all search data for one Solve call.
type engine struct {
	// Policy
	strategy          Strategy
	stopAtHamiltonian bool

	// Graph data: borrowed neighbor lists of the View.
	adj [][]int
	n   int

	// Search state
	state pathState
	best  bestTracker
	roots []int

	// BranchAndBound scratch
	oracle *reachOracle

	// FastBound scratch
	bounds       []int
	currentBound int

	// Cancellation; nil when the context can never be cancelled.
	done <-chan struct{}

	stats Stats
}

// newEngine allocates every buffer the selected strategy needs.
func newEngine(adj [][]int, strategy Strategy, sink LogSink, done <-chan struct{}) *engine {
	n := len(adj)
	e := &engine{
		strategy: strategy,
		adj:      adj,
		n:        n,
		state:    newPathState(n),
		best:     newBestTracker(n, sink),
		done:     done,
	}
	switch strategy {
	case BruteForce:
		e.stopAtHamiltonian = true
		e.roots = indexOrder(n)
	case BruteForceComplete:
		e.roots = indexOrder(n)
	case BranchAndBound:
		e.stopAtHamiltonian = true
		e.roots = indexOrder(n)
		e.oracle = newReachOracle(adj)
	case FastBound:
		e.stopAtHamiltonian = true
		e.roots = inDegreeOrder(adj)
		e.bounds = newBoundTable(n)
	}

	return e
}

// run explores every root in order. It returns false if interrupted.
func (e *engine) run() bool {
	var root int
	for _, root = range e.roots {
		e.stats.Roots++
		e.beginRoot(root)
		switch e.exhaust() {
		case interrupted:
			return false
		case foundHamiltonian:
			// N vertices is the absolute maximum: nothing can beat it.
			return true
		}
		e.finishRoot(root)
	}

	return true
}

// beginRoot starts a depth-1 path at root.
func (e *engine) beginRoot(root int) {
	e.state.push(root)
	e.currentBound = 1
}

// finishRoot runs after root's subtree is fully explored and popped.
func (e *engine) finishRoot(root int) {
	if e.bounds != nil {
		e.commitBound(root)
	}
}

// exhaust drives EXTEND/BACKTRACK until the current root is exhausted.
func (e *engine) exhaust() outcome {
	s := &e.state
	var (
		next int
		ok   bool
	)
	for {
		if e.done != nil {
			select {
			case <-e.done:
				return interrupted
			default:
			}
		}

		// EXTEND
		if next, ok = e.extend(); ok {
			s.push(next)
			e.stats.Extensions++
			continue
		}

		// BACKTRACK: the path is maximal under the current pruning.
		e.stats.Backtracks++
		if s.depth > e.best.length() {
			e.best.record(s.current())
			e.stats.Improvements++
			if e.stopAtHamiltonian && s.depth == e.n {
				return foundHamiltonian
			}
		}
		if s.depth > e.currentBound {
			e.currentBound = s.depth
		}
		s.pop()
		if s.depth == 0 {
			return rootExhausted
		}
	}
}

// extend finds the next admissible neighbor of the path's last vertex and
// advances that frame's cursor past it.
func (e *engine) extend() (int, bool) {
	s := &e.state
	d := s.depth - 1
	nbrs := e.adj[s.path[d]]
	var (
		i, next int
	)
	for i = s.cursor[d]; i < len(nbrs); i++ {
		next = nbrs[i]
		if s.contains(next) {
			continue
		}
		if e.prune(next) {
			continue
		}
		s.cursor[d] = i + 1

		return next, true
	}
	s.cursor[d] = len(nbrs)

	return 0, false
}

// prune applies the strategy's bound test to the candidate edge into next.
func (e *engine) prune(next int) bool {
	switch e.strategy {
	case BranchAndBound:
		return e.pruneByReach(next)
	case FastBound:
		return e.pruneByTable(next)
	default:
		return false
	}
}
