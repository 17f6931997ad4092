// Package core provides the read-only graph view consumed by the longest-path
// search engine and a compact, index-addressed adjacency-list Graph that
// implements it.
//
// The Graph G = (V,E) is addressed by dense vertex indices 0..N-1:
//
//   - Directed vs. undirected (WithDirected). Undirected graphs store each
//     inserted edge twice (u→v and v→u); the mirror is never deduplicated.
//   - Parallel edges and self-loops are structurally permitted. A self-loop
//     can never appear in a simple path, so searches simply skip it.
//   - Neighbor order is insertion order and is significant: it fixes the
//     exploration order of every search and therefore which optimal path is
//     reported among ties.
//
// Why a separate View interface?
//
//   - Search strategies borrow a View read-only for the duration of a call.
//     Any adjacency source (a core.Graph, a gonum graph converted through
//     package converters, a hand-written table) can be searched.
//   - A View is immutable during a search, so any number of concurrent
//     searches may share one View without locking.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	FromAdjacency(adj [][]int, opts ...GraphOption)      // O(V+E), validated copy
//	AddVertices(k int) (first int, err error)            // O(k)
//	AddEdge(u, v int) error                              // O(1) amortized
//	HasEdge(u, v int) bool                               // O(deg(u))
//	Neighbors(v int) []int                               // O(1), borrowed slice
//	InDegrees() []int                                    // O(V+E)
//	Order() int / EdgeCount() int / Directed() bool      // O(1)
//	Clone() *Graph                                       // O(V+E)
//	Validate(v View) error                               // O(V+E)
//
// Errors:
//
//	ErrNegativeOrder     - negative vertex count.
//	ErrVertexOutOfRange  - a vertex or neighbor index outside [0, N).
//	ErrNilView           - nil View passed to Validate.
package core
