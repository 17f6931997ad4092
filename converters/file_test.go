package converters_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/converters"
	"github.com/katalvlaran/lpath/core"
)

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, converters.Gzip, converters.CompressionFor("g.txt.GZ"))
	assert.Equal(t, converters.Zstd, converters.CompressionFor("/tmp/g.zst"))
	assert.Equal(t, converters.None, converters.CompressionFor("graph.txt"))
}

func TestGraphFile_RoundTrip(t *testing.T) {
	g, err := core.NewGraph(5, core.WithDirected(true))
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	dir := t.TempDir()
	for _, name := range []string{"g.txt", "g.txt.gz", "g.txt.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, converters.WriteGraphFile(path, g), name)

		back, err := converters.ReadGraphFile(path, true)
		require.NoError(t, err, name)
		require.Equal(t, g.Order(), back.Order(), name)
		for v := 0; v < g.Order(); v++ {
			assert.Equal(t, g.Neighbors(v), back.Neighbors(v), "%s vertex %d", name, v)
		}
	}

	// Compressed files are not plain text.
	raw, err := os.ReadFile(filepath.Join(dir, "g.txt.gz"))
	require.NoError(t, err)
	assert.NotEqual(t, byte('5'), raw[0])
}

func TestReadGraphFile_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := converters.ReadGraphFile(filepath.Join(dir, "missing.txt"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bogus := filepath.Join(dir, "bogus.gz")
	require.NoError(t, os.WriteFile(bogus, []byte("3\n0 1\n"), 0o600))
	_, err = converters.ReadGraphFile(bogus, true)
	assert.Error(t, err)

	assert.ErrorIs(t, converters.WriteGraphFile(filepath.Join(dir, "x.txt"), nil), converters.ErrNilGraph)
}
