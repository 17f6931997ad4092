// Package longest - public entry points.
//
// Solve is the single dispatcher: it validates options and the View, takes
// a borrowed snapshot of the neighbor lists, allocates the engine once and
// runs the selected strategy. The per-strategy helpers are thin wrappers.
package longest

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lpath/core"
)

// Solve searches g for a longest simple path using opts.Strategy.
//
// Contracts:
//   - g must satisfy core.View; it is validated once (O(V+E)) and a
//     violation is reported as a wrapped core.ErrVertexOutOfRange before
//     any search work starts.
//   - g must not be mutated until Solve returns.
//
// On cancellation of ctx or expiry of opts.TimeLimit, Solve returns the best
// path found so far with Complete=false and an error wrapping both
// ErrInterrupted and the context error.
//
// Complexity: exponential in the worst case; O(V+E) memory.
func Solve(ctx context.Context, g core.View, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := core.Validate(g); err != nil {
		return Result{}, fmt.Errorf("longest: %w", err)
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	e := newEngine(snapshot(g), opts.Strategy, opts.Sink, ctx.Done())

	start := time.Now()
	complete := e.run()
	res := Result{
		Strategy:   opts.Strategy,
		Path:       e.best.snapshot(),
		Complete:   complete,
		Stats:      e.stats,
		RootBounds: e.bounds,
		Elapsed:    time.Since(start),
	}
	if !complete {
		return res, fmt.Errorf("%w after %d roots: %w", ErrInterrupted, res.Stats.Roots, ctx.Err())
	}

	return res, nil
}

// BruteForceSearch runs exhaustive search. With stopAtHamiltonian the search
// ends at the first path visiting every vertex; otherwise it is complete.
func BruteForceSearch(ctx context.Context, g core.View, stopAtHamiltonian bool, sink LogSink) (Result, error) {
	opts := Options{Strategy: BruteForceComplete, Sink: sink}
	if stopAtHamiltonian {
		opts.Strategy = BruteForce
	}

	return Solve(ctx, g, opts)
}

// BranchAndBoundSearch runs the reachability-pruned search.
func BranchAndBoundSearch(ctx context.Context, g core.View, sink LogSink) (Result, error) {
	return Solve(ctx, g, Options{Strategy: BranchAndBound, Sink: sink})
}

// FastBoundSearch runs the memoized-bound search.
func FastBoundSearch(ctx context.Context, g core.View, sink LogSink) (Result, error) {
	return Solve(ctx, g, Options{Strategy: FastBound, Sink: sink})
}

// validateOptions checks Options without touching the graph.
func validateOptions(opts Options) error {
	if !opts.Strategy.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedStrategy, opts.Strategy)
	}
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}

	return nil
}

// snapshot borrows every neighbor list once so the hot loop indexes a plain
// [][]int instead of calling through the interface. Nothing is copied.
func snapshot(g core.View) [][]int {
	n := g.Order()
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		adj[v] = g.Neighbors(v)
	}

	return adj
}
