package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/core"
)

func TestNewGraph_NegativeOrder(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)
}

func TestNewGraph_Defaults(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.True(t, g.Directed())
	assert.Equal(t, 0, g.EdgeCount())
	for v := 0; v < 3; v++ {
		assert.Empty(t, g.Neighbors(v))
	}
	assert.Nil(t, g.Neighbors(3), "out-of-range vertex has no neighbors")
}

func TestAddEdge_DirectedKeepsInsertionOrder(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	assert.Equal(t, []int{3, 1, 2}, g.Neighbors(0))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_UndirectedMirrorsWithoutDedup(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(false))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1))

	assert.Equal(t, []int{1, 1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 0, 1, 1}, g.Neighbors(1))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {0, 2}, {5, 1}}
	for _, c := range cases {
		err = g.AddEdge(c[0], c[1])
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange, "edge %v", c)
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddVertices(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	first, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 5, g.Order())
	require.NoError(t, g.AddEdge(4, 0))

	_, err = g.AddVertices(-2)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)
}

func TestInDegrees(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	assert.Equal(t, []int{1, 0, 2}, g.InDegrees())
}

func TestClone_IsDeep(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(false))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, []int{0}, g.Neighbors(1), "original untouched")
	assert.Equal(t, []int{0, 2}, c.Neighbors(1))
	assert.False(t, c.Directed())
	assert.Equal(t, 2, c.EdgeCount())
}

func TestFromAdjacency(t *testing.T) {
	adj := [][]int{{1, 2}, {2}, {}}
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))

	adj[0][0] = 2
	assert.Equal(t, []int{1, 2}, g.Neighbors(0), "input is copied")

	_, err = core.FromAdjacency([][]int{{0, 7}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// rawView is a View that performs no validation on its own.
type rawView [][]int

func (r rawView) Order() int            { return len(r) }
func (r rawView) Neighbors(v int) []int { return r[v] }

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, core.Validate(nil), core.ErrNilView)
	assert.NoError(t, core.Validate(rawView{{1}, {0}}))
	assert.NoError(t, core.Validate(rawView{}))
	assert.ErrorIs(t, core.Validate(rawView{{1}, {-1}}), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, core.Validate(rawView{{2}, {}}), core.ErrVertexOutOfRange)
}

func TestHasArc(t *testing.T) {
	v := rawView{{1}, {}}
	assert.True(t, core.HasArc(v, 0, 1))
	assert.False(t, core.HasArc(v, 1, 0))
	assert.False(t, core.HasArc(v, 9, 0))
	assert.Equal(t, []int{0, 1}, core.InDegrees(v))
}
