package longest

import "github.com/bits-and-blooms/bitset"

// pathState is the mutable backtracking frame shared by every strategy.
//
// Frame d (0 ≤ d < depth) holds path[d] and cursor[d], the index into
// adj[path[d]] of the next untried outgoing edge. member mirrors path for
// O(1) containment and is updated in lockstep with push/pop.
type pathState struct {
	path   []int
	cursor []int
	member *bitset.BitSet
	depth  int
}

// newPathState allocates all buffers for a graph of order n.
func newPathState(n int) pathState {
	return pathState{
		path:   make([]int, n),
		cursor: make([]int, n),
		member: bitset.New(uint(n)),
	}
}

// push appends v with a fresh cursor. v must not be a member.
func (s *pathState) push(v int) {
	s.path[s.depth] = v
	s.cursor[s.depth] = 0
	s.member.Set(uint(v))
	s.depth++
}

// pop removes the last vertex. The parent keeps its stored cursor, which
// already points past the edge that led to the popped vertex.
func (s *pathState) pop() {
	s.depth--
	s.member.Clear(uint(s.path[s.depth]))
}

// contains reports whether v is on the path.
func (s *pathState) contains(v int) bool { return s.member.Test(uint(v)) }

// current returns the live path; valid until the next push/pop.
func (s *pathState) current() []int { return s.path[:s.depth] }
