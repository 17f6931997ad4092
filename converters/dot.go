package converters

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lpath/core"
)

// DOTName is the graph name written by WriteDOT.
const DOTName = "lpath"

var (
	pathColor = encoding.Attribute{Key: "color", Value: "red"}
	rootShape = encoding.Attribute{Key: "shape", Value: "doublecircle"}
)

// dotNode is a vertex that knows whether it lies on the highlighted path.
type dotNode struct {
	id     int64
	onPath bool
	first  bool
}

func (n dotNode) ID() int64 { return n.id }

// Attributes implements encoding.Attributer.
func (n dotNode) Attributes() []encoding.Attribute {
	switch {
	case n.first:
		return []encoding.Attribute{pathColor, rootShape}
	case n.onPath:
		return []encoding.Attribute{pathColor}
	default:
		return nil
	}
}

// dotEdge is an arc that knows whether the highlighted path uses it.
type dotEdge struct {
	f, t   dotNode
	onPath bool
}

func (e dotEdge) From() graph.Node { return e.f }
func (e dotEdge) To() graph.Node   { return e.t }

// ReversedEdge implements graph.Edge.
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{f: e.t, t: e.f, onPath: e.onPath} }

// Attributes implements encoding.Attributer.
func (e dotEdge) Attributes() []encoding.Attribute {
	if e.onPath {
		return []encoding.Attribute{pathColor}
	}

	return nil
}

// WriteDOT renders g as Graphviz DOT, colouring the vertices and arcs of
// path red and drawing its first vertex as a double circle. path may be
// empty; its vertices must lie in [0, N). Self-loops and parallel arcs are
// drawn once at most (self-loops not at all).
//
// Complexity: O((N + E) log N) (gonum sorts nodes and edges for stable output).
func WriteDOT(w io.Writer, g *core.Graph, path []int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	directed := g.Directed()

	// 1) Mark path vertices and arcs.
	onPath := make([]bool, n)
	arcs := make(map[[2]int]bool, len(path))
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("converters: path[%d]=%d: %w", i, v, core.ErrVertexOutOfRange)
		}
		onPath[v] = true
		if i > 0 {
			arcs[[2]int{path[i-1], v}] = true
			if !directed {
				arcs[[2]int{v, path[i-1]}] = true
			}
		}
	}
	node := func(v int) dotNode {
		return dotNode{id: int64(v), onPath: onPath[v], first: len(path) > 0 && path[0] == v}
	}

	// 2) Build the gonum view with attributed nodes and edges.
	var gg interface {
		graph.Graph
		AddNode(graph.Node)
		SetEdge(graph.Edge)
	}
	if directed {
		gg = simple.NewDirectedGraph()
	} else {
		gg = simple.NewUndirectedGraph()
	}
	var u int
	for u = 0; u < n; u++ {
		gg.AddNode(node(u))
	}
	for u = 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if v == u || gg.Edge(int64(u), int64(v)) != nil {
				continue
			}
			gg.SetEdge(dotEdge{f: node(u), t: node(v), onPath: arcs[[2]int{u, v}]})
		}
	}

	// 3) Encode.
	b, err := dot.Marshal(gg, DOTName, "", "  ")
	if err != nil {
		return fmt.Errorf("converters: marshal dot: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}
