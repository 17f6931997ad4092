package longest

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lpath/core"
)

// ValidatePath checks that path is a simple path of g: every index lies in
// [0, N), no vertex repeats, and each consecutive pair is an edge of g.
// An empty path is valid only for a graph without vertices.
//
// A search result failing this check is an implementation defect, never a
// property of the input.
//
// Complexity: O(L·d) for L = len(path) and d the maximum out-degree.
func ValidatePath(g core.View, path []int) error {
	if g == nil {
		return core.ErrNilView
	}
	n := g.Order()
	if len(path) == 0 {
		if n == 0 {
			return nil
		}

		return ErrEmptyPath
	}

	seen := roaring.New()
	var (
		i, v int
	)
	for i, v = range path {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: path[%d]=%d outside [0,%d)", ErrInvalidPath, i, v, n)
		}
		if !seen.CheckedAdd(uint32(v)) {
			return fmt.Errorf("%w: vertex %d repeats at position %d", ErrInvalidPath, v, i)
		}
		if i > 0 && !core.HasArc(g, path[i-1], v) {
			return fmt.Errorf("%w: no edge %d→%d at position %d", ErrInvalidPath, path[i-1], v, i)
		}
	}

	return nil
}
