package converters

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/lpath/core"
)

// WriteGraph writes g in the text graph format: N, then one "u v" line per
// arc in adjacency order.
//
// For an undirected graph every edge is stored twice, so only the entry with
// u ≤ v is written (and one line per mirrored self-loop pair). Reading the
// output back with the same directedness reproduces g.
//
// Complexity: O(N + E).
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	n := g.Order()
	directed := g.Directed()

	buf := strconv.AppendInt(make([]byte, 0, 32), int64(n), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	var loops int
	for u := 0; u < n; u++ {
		loops = 0
		for _, v := range g.Neighbors(u) {
			if !directed {
				if v < u {
					continue
				}
				if v == u {
					loops++
					if loops%2 == 0 {
						continue
					}
				}
			}
			buf = strconv.AppendInt(buf[:0], int64(u), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
