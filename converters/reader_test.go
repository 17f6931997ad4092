package converters_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/converters"
	"github.com/katalvlaran/lpath/core"
)

func TestReadGraph_Directed(t *testing.T) {
	g, err := converters.ReadGraph(strings.NewReader("4\n0 1\n1 2\n2 3\n3 0\n"), true)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(3))
}

func TestReadGraph_Undirected(t *testing.T) {
	g, err := converters.ReadGraph(strings.NewReader("3\n0 1\n1 2\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(2))
}

func TestReadGraph_StopsAtGarbage(t *testing.T) {
	in := "3\n0 1\n1 2\n# trailing comment\n2 0\n"
	g, err := converters.ReadGraph(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Empty(t, g.Neighbors(2))

	// A dangling endpoint is ignored as well.
	g, err = converters.ReadGraph(strings.NewReader("2 0 1 1"), true)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestReadGraph_VertexCountOnly(t *testing.T) {
	g, err := converters.ReadGraph(strings.NewReader("5"), true)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Zero(t, g.EdgeCount())
}

func TestReadGraph_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":    "",
		"blank":    "  \n\n",
		"word":     "vertices\n0 1\n",
		"negative": "-3\n",
		"huge":     "9999999999\n0 1\n",
	} {
		_, err := converters.ReadGraph(strings.NewReader(in), true)
		assert.ErrorIs(t, err, converters.ErrNoGraph, name)
	}

	_, err := converters.ReadGraph(strings.NewReader(strconv.Itoa(converters.MaxVertices+1)), true)
	assert.ErrorIs(t, err, converters.ErrNoGraph)

	_, err = converters.ReadGraph(strings.NewReader("2\n0 1\n1 2\n"), true)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	boom := errors.New("boom")
	_, err = converters.ReadGraph(iotest.ErrReader(boom), true)
	assert.ErrorIs(t, err, boom)
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g, err := core.NewGraph(4, core.WithDirected(directed))
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(0, 1))
		require.NoError(t, g.AddEdge(2, 1))
		require.NoError(t, g.AddEdge(3, 3))
		require.NoError(t, g.AddEdge(0, 1))

		var buf bytes.Buffer
		require.NoError(t, converters.WriteGraph(&buf, g))

		back, err := converters.ReadGraph(&buf, directed)
		require.NoError(t, err)
		assert.Equal(t, g.EdgeCount(), back.EdgeCount(), "directed=%v", directed)
		for v := 0; v < g.Order(); v++ {
			assert.ElementsMatch(t, g.Neighbors(v), back.Neighbors(v), "directed=%v vertex %d", directed, v)
		}
	}
}

func TestWriteGraph_UndirectedFormat(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(false))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))

	var buf bytes.Buffer
	require.NoError(t, converters.WriteGraph(&buf, g))
	assert.Equal(t, "3\n0 1\n1 2\n", buf.String())

	assert.ErrorIs(t, converters.WriteGraph(&buf, nil), converters.ErrNilGraph)
}
