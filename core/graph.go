package core

import "fmt"

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// EdgeCount returns the number of edges inserted through AddEdge. For
// undirected graphs each counts once even though it occupies two
// adjacency entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Neighbors returns the successors of v in insertion order, or nil when v is
// out of range. The slice is shared with the graph and must not be modified.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}

	return g.adj[v]
}

// AddVertices appends k isolated vertices and returns the index of the first.
//
// Complexity: O(k).
func (g *Graph) AddVertices(k int) (int, error) {
	if k < 0 {
		return 0, ErrNegativeOrder
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, nil)
	}

	return first, nil
}

// AddEdge inserts the edge u→v. Undirected graphs also insert v→u, even when
// u == v or the pair already exists, matching the plain edge-list input
// format where every line contributes both orientations.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("core: AddEdge(%d, %d) with %d vertices: %w", u, v, n, ErrVertexOutOfRange)
	}
	g.adj[u] = append(g.adj[u], v)
	if !g.directed {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++

	return nil
}

// HasEdge reports whether v appears among the successors of u.
//
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return hasArc(g, u, v)
}

// InDegrees returns, for every vertex, the number of adjacency entries that
// point at it.
//
// Complexity: O(V+E).
func (g *Graph) InDegrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return InDegrees(g)
}

// Clone returns a deep copy of g with identical neighbor order.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adj:      make([][]int, len(g.adj)),
		directed: g.directed,
		edges:    g.edges,
	}
	for v, row := range g.adj {
		if len(row) > 0 {
			out.adj[v] = append([]int(nil), row...)
		}
	}

	return out
}

// FromAdjacency builds a Graph whose neighbor lists are copies of adj.
// Every row is taken verbatim as an out-neighbor list: no mirroring happens
// even when WithDirected(false) is supplied, because adj is assumed to
// already contain both orientations. Out-of-range entries are rejected.
//
// Complexity: O(V+E).
func FromAdjacency(adj [][]int, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(len(adj), opts...)
	if err != nil {
		return nil, err
	}
	var entries int
	for v, row := range adj {
		if len(row) > 0 {
			g.adj[v] = append([]int(nil), row...)
			entries += len(row)
		}
	}
	if err = Validate(g); err != nil {
		return nil, err
	}
	g.edges = entries
	if !g.directed {
		g.edges = entries / 2
	}

	return g, nil
}
