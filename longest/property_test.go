package longest_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpath/builder"
	"github.com/katalvlaran/lpath/longest"
)

// TestStrategies_MatchExhaustiveOptimum cross-checks every strategy against a
// plain recursive enumeration on seeded random graphs.
func TestStrategies_MatchExhaustiveOptimum(t *testing.T) {
	const trials = 12
	densities := []float64{0.1, 0.25, 0.45}
	for _, directed := range []bool{true, false} {
		for _, p := range densities {
			for k := 0; k < trials; k++ {
				seed := builder.DeriveSeed(2024, uint64(k))
				n := 4 + k%6
				name := fmt.Sprintf("directed=%v/p=%.2f/n=%d/seed=%d", directed, p, n, seed)
				t.Run(name, func(t *testing.T) {
					g := randomGraph(t, n, p, directed, seed)
					adj := adjacency(g)
					want := optimum(adj)
					for _, s := range longest.Strategies() {
						res, err := longest.Solve(context.Background(), g, longest.Options{Strategy: s})
						require.NoError(t, err)
						require.True(t, res.Complete)
						assert.Len(t, res.Path, want, s.String())
						assert.NoError(t, longest.ValidatePath(g, res.Path), s.String())
						for v, b := range res.RootBounds {
							if b == -1 {
								continue
							}
							assert.GreaterOrEqual(t, b, longestFrom(adj, v, make([]bool, n)),
								"%s: bound of root %d", s, v)
						}
					}
				})
			}
		}
	}
}

// TestReachBound_IsAdmissible checks that the reachability count never falls
// below the true longest extension, for every start and for random
// exclusion sets of any size.
func TestReachBound_IsAdmissible(t *testing.T) {
	for _, directed := range []bool{true, false} {
		for k := 0; k < 8; k++ {
			seed := builder.DeriveSeed(7, uint64(k))
			g := randomGraph(t, 8, 0.3, directed, seed)
			adj := adjacency(g)
			rng := rand.New(rand.NewSource(seed))
			for start := range adj {
				for draw := 0; draw < 6; draw++ {
					used := make([]bool, len(adj))
					var exclude []int
					for v := range adj {
						if v != start && rng.Float64() < 0.35 {
							used[v] = true
							exclude = append(exclude, v)
						}
					}
					exact := longestFrom(adj, start, used)
					assert.GreaterOrEqual(t, longest.ReachBound(adj, start, exclude...), exact,
						"directed=%t seed %d start %d exclude %v", directed, k, start, exclude)
				}
			}
		}
	}
}

func TestReachBound(t *testing.T) {
	// 0→1→2, 2→0, 3 isolated.
	adj := [][]int{{1}, {2}, {0}, {}}
	assert.Equal(t, 3, longest.ReachBound(adj, 0))
	assert.Equal(t, 1, longest.ReachBound(adj, 0, 1))
	assert.Equal(t, 2, longest.ReachBound(adj, 1, 0))
	assert.Equal(t, 0, longest.ReachBound(adj, 2, 2))
	assert.Equal(t, 1, longest.ReachBound(adj, 3))
}

func TestInDegreeOrder(t *testing.T) {
	// in-degrees: 0→0, 1→2, 2→1, 3→2
	adj := [][]int{{1, 3}, {2}, {3, 1}, {}}
	assert.Equal(t, []int{1, 3, 2, 0}, longest.InDegreeOrder(adj))
}
