package longest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lpath/core"
	"github.com/katalvlaran/lpath/longest"
)

func TestValidatePath(t *testing.T) {
	g := graphOf(t, 4, true, arc{0, 1}, arc{1, 2}, arc{2, 0})

	assert.NoError(t, longest.ValidatePath(g, []int{0, 1, 2}))
	assert.NoError(t, longest.ValidatePath(g, []int{3}))

	cases := map[string][]int{
		"out of range": {0, 7},
		"negative":     {-1},
		"repeat":       {0, 1, 2, 0},
		"missing edge": {1, 0},
	}
	for name, p := range cases {
		assert.ErrorIs(t, longest.ValidatePath(g, p), longest.ErrInvalidPath, name)
	}

	assert.ErrorIs(t, longest.ValidatePath(g, nil), longest.ErrEmptyPath)
	assert.NoError(t, longest.ValidatePath(graphOf(t, 0, true), nil))
	assert.ErrorIs(t, longest.ValidatePath(nil, []int{0}), core.ErrNilView)
}

func TestValidatePath_Undirected(t *testing.T) {
	g := graphOf(t, 3, false, arc{0, 1}, arc{1, 2})
	assert.NoError(t, longest.ValidatePath(g, []int{2, 1, 0}))
}
