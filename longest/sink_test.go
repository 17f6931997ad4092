package longest_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/longest"
)

func TestWriterSink_Format(t *testing.T) {
	var buf bytes.Buffer
	g := graphOf(t, 3, true, arc{0, 1}, arc{2, 0})

	_, err := longest.Solve(context.Background(), g, longest.Options{
		Strategy: longest.BruteForce,
		Sink:     longest.NewWriterSink(&buf),
	})
	require.NoError(t, err)

	want := "LOG: Found path 0 -> 1 (length 1)\n" +
		"path: 0 1\n" +
		"LOG: Found path 2 -> 0 (length 2)\n" +
		"path: 2 0 1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriterSink_SingleVertex(t *testing.T) {
	var buf bytes.Buffer
	longest.NewWriterSink(&buf).Found([]int{4})
	assert.Equal(t, "LOG: Found path 4 -> 4 (length 0)\npath: 4\n", buf.String())

	buf.Reset()
	longest.NewWriterSink(&buf).Found(nil)
	assert.Empty(t, buf.String())
}

func TestWriterSink_FlushesBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriterSize(&buf, 4096)
	longest.NewWriterSink(bw).Found([]int{1, 2})
	assert.Equal(t, "LOG: Found path 1 -> 2 (length 1)\npath: 1 2\n", buf.String())
}

func TestSinkFunc_ReceivesEveryImprovement(t *testing.T) {
	var got []int
	g := graphOf(t, 4, true, arc{0, 1}, arc{1, 2}, arc{3, 0})
	res, err := longest.Solve(context.Background(), g, longest.Options{
		Strategy: longest.BruteForceComplete,
		Sink: longest.SinkFunc(func(path []int) {
			got = append(got, len(path))
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, len(got), res.Stats.Improvements)
}

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer
	sink := longest.NewZerologSink(zerolog.New(&buf))
	sink.Found([]int{3, 1, 2})
	sink.WithLevel(zerolog.InfoLevel).Found([]int{5})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ev struct {
		Level   string `json:"level"`
		First   int    `json:"first"`
		Length  int    `json:"length"`
		Path    []int  `json:"path"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, "debug", ev.Level)
	assert.Equal(t, 3, ev.First)
	assert.Equal(t, 2, ev.Length)
	assert.Equal(t, []int{3, 1, 2}, ev.Path)
	assert.Equal(t, "found path", ev.Message)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &ev))
	assert.Equal(t, "info", ev.Level)
	assert.Equal(t, 0, ev.Length)
}
