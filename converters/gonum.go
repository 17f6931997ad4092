package converters

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lpath/core"
)

// ToGonum copies g into a gonum simple graph whose node IDs are the vertex
// indices: *simple.DirectedGraph for a directed g, *simple.UndirectedGraph
// otherwise.
//
// Simple graphs hold neither self-loops nor parallel arcs; both are dropped.
// Neither can lengthen a simple path, so longest-path answers are unchanged.
//
// Complexity: O(N + E).
func ToGonum(g *core.Graph) (graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if g.Directed() {
		dg := simple.NewDirectedGraph()
		fill(g, n, func(id int64) { dg.AddNode(simple.Node(id)) },
			func(u, v int64) {
				if !dg.HasEdgeFromTo(u, v) {
					dg.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
				}
			})

		return dg, nil
	}
	ug := simple.NewUndirectedGraph()
	fill(g, n, func(id int64) { ug.AddNode(simple.Node(id)) },
		func(u, v int64) {
			if !ug.HasEdgeBetween(u, v) {
				ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		})

	return ug, nil
}

// fill feeds nodes and loop-free arcs of g to the given callbacks.
func fill(g *core.Graph, n int, addNode func(int64), addEdge func(u, v int64)) {
	var u int
	for u = 0; u < n; u++ {
		addNode(int64(u))
	}
	for u = 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if v != u {
				addEdge(int64(u), int64(v))
			}
		}
	}
}

// FromGonum copies a gonum graph into a core.Graph. Nodes are renumbered
// 0..N-1 in ascending ID order and every neighbor list is emitted in that
// order, so the result is deterministic regardless of gonum's iteration
// order. A graph.Directed input yields a directed core.Graph.
//
// Complexity: O((N + E) log N).
func FromGonum(gg graph.Graph) (*core.Graph, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	_, directed := gg.(graph.Directed)

	// 1) Stable renumbering by node ID.
	nodes := graph.NodesOf(gg.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	index := make(map[int64]int, len(nodes))
	for i, nd := range nodes {
		index[nd.ID()] = i
	}

	g, err := core.NewGraph(len(nodes), core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}

	// 2) Arcs in ascending target order; gonum lists each neighbor once, and an
	// undirected edge is added from its smaller end only.
	var (
		u    int
		nbrs []int
	)
	for u = range nodes {
		nbrs = nbrs[:0]
		for _, to := range graph.NodesOf(gg.From(nodes[u].ID())) {
			nbrs = append(nbrs, index[to.ID()])
		}
		sort.Ints(nbrs)
		for _, v := range nbrs {
			if !directed && v < u {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("converters: edge %d→%d: %w", u, v, err)
			}
		}
	}

	return g, nil
}
