package converters

import "errors"

// MaxVertices caps the vertex count accepted by ReadGraph.
const MaxVertices = 1 << 20

var (
	// ErrNoGraph indicates input without a readable vertex count in
	// [0, MaxVertices].
	ErrNoGraph = errors.New("converters: no graph in input")

	// ErrNilGraph is returned when a nil graph is passed to a writer or adapter.
	ErrNilGraph = errors.New("converters: nil graph")
)
