// Package core defines the View contract, the Graph type, its options and
// sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a negative vertex count was requested.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex or neighbor index outside [0, N).
	// It is the graph contract violation every search relies on being absent.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNilView indicates a nil View was supplied.
	ErrNilView = errors.New("core: view is nil")
)

// View is the read-only graph contract consumed by search strategies.
//
// Order reports the vertex count N. Neighbors(v) returns the ordered
// successor list of v; every entry lies in [0, N). The returned slice is
// borrowed: callers must not mutate it, and implementations must not mutate
// it while a search holds the View.
type View interface {
	Order() int
	Neighbors(v int) []int
}

// GraphOption configures a Graph before its first vertex is added.
type GraphOption func(g *Graph)

// WithDirected sets the graph orientation. The default is directed.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) {
		g.directed = directed
	}
}

// Graph is an index-addressed adjacency-list graph implementing View.
//
// Mutations take a write lock and queries that allocate take a read lock.
// Neighbors returns the internal slice without locking: it is meant for
// the search hot path, where the graph is frozen.
type Graph struct {
	mu sync.RWMutex

	// adj[v] lists successors of v in insertion order.
	adj [][]int

	// directed reports whether AddEdge inserts one entry (true) or two.
	directed bool

	// edges counts AddEdge calls, i.e. input edges, not adjacency entries.
	edges int
}

var _ View = (*Graph)(nil)

// NewGraph returns a Graph with n isolated vertices 0..n-1.
// Default orientation is directed; see WithDirected.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{
		adj:      make([][]int, n),
		directed: true,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
