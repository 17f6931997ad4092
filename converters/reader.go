package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lpath/core"
)

// ReadGraph parses the text graph format from r.
//
// The first token is the vertex count N. Edge endpoints follow as
// whitespace-separated integer pairs; line breaks carry no meaning beyond
// separating tokens. Reading stops at EOF or at the first pair that does not
// parse as two integers, so trailing comments or garbage are ignored. Each
// pair becomes AddEdge(u, v) in input order; for an undirected graph the
// reverse entry is mirrored by core.
//
// Errors:
//   - ErrNoGraph if the first token is missing, not an integer, negative
//     or above MaxVertices.
//   - core.ErrVertexOutOfRange (wrapped) for an endpoint outside [0, N).
//   - Any I/O error from r.
//
// Complexity: O(N + E).
func ReadGraph(r io.Reader, directed bool) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1) Vertex count.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("converters: read vertex count: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrNoGraph)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrNoGraph, sc.Text())
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrNoGraph, n, MaxVertices)
	}
	g, err := core.NewGraph(n, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGraph, err)
	}

	// 2) Edge pairs until the first malformed one.
	var (
		u, v  int
		line  int
		ok    bool
		token string
	)
	for {
		if token, ok = scanToken(sc); !ok {
			break
		}
		if u, err = strconv.Atoi(token); err != nil {
			break
		}
		if token, ok = scanToken(sc); !ok {
			break
		}
		if v, err = strconv.Atoi(token); err != nil {
			break
		}
		line++
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("converters: edge %d (%d %d): %w", line, u, v, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: read edges: %w", err)
	}

	return g, nil
}

// scanToken advances sc and returns the next token.
func scanToken(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}

	return sc.Text(), true
}
