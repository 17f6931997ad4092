package longest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/longest"
)

func TestSolveAll_Agrees(t *testing.T) {
	g := randomGraph(t, 9, 0.3, true, 17)
	results, err := longest.SolveAll(context.Background(), g, nil, longest.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, len(longest.Strategies()))
	for i, s := range longest.Strategies() {
		assert.Equal(t, s, results[i].Strategy)
		assert.True(t, results[i].Complete)
	}
	assert.NoError(t, longest.CheckAgreement(results))
}

func TestSolveAll_Subset(t *testing.T) {
	g := graphOf(t, 3, true, arc{0, 1}, arc{1, 2})
	results, err := longest.SolveAll(context.Background(), g,
		[]longest.Strategy{longest.FastBound, longest.BruteForce}, longest.Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, longest.FastBound, results[0].Strategy)
	assert.Equal(t, longest.BruteForce, results[1].Strategy)
}

func TestSolveAll_PropagatesErrors(t *testing.T) {
	g := graphOf(t, 2, true, arc{0, 1})
	_, err := longest.SolveAll(context.Background(), g,
		[]longest.Strategy{longest.BruteForce, longest.Strategy(9)}, longest.Options{})
	assert.ErrorIs(t, err, longest.ErrUnsupportedStrategy)
}

func TestCheckAgreement(t *testing.T) {
	ok := []longest.Result{
		{Strategy: longest.BruteForce, Path: []int{0, 1}, Complete: true},
		{Strategy: longest.FastBound, Path: []int{1, 2}, Complete: true},
		// Partial results are not compared.
		{Strategy: longest.BranchAndBound, Path: []int{0}, Complete: false},
	}
	assert.NoError(t, longest.CheckAgreement(ok))

	bad := []longest.Result{
		{Strategy: longest.BruteForce, Path: []int{0, 1, 2}, Complete: true},
		{Strategy: longest.FastBound, Path: []int{1, 2}, Complete: true},
	}
	err := longest.CheckAgreement(bad)
	assert.ErrorIs(t, err, longest.ErrDisagreement)
	assert.Contains(t, err.Error(), "FAST_BOUND")

	assert.NoError(t, longest.CheckAgreement(nil))
}
