package longest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lpath/core"
)

// SolveAll runs each strategy concurrently over the same View and returns
// the results in the order of strategies. An empty list means Strategies().
//
// Every run owns its own engine; the View is only read, so no locking is
// needed. opts.Sink, when set, is shared and must be safe for concurrent use
// (WriterSink and ZerologSink are). The first failing run cancels the rest;
// results of runs that finished are still returned.
func SolveAll(ctx context.Context, g core.View, strategies []Strategy, opts Options) ([]Result, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]Result, len(strategies))
	grp, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		i, s := i, s
		grp.Go(func() error {
			o := opts
			o.Strategy = s
			res, err := Solve(gctx, g, o)
			results[i] = res
			if err != nil {
				return fmt.Errorf("longest: %s: %w", s, err)
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// CheckAgreement verifies that every complete result reports the same path
// length. Exact strategies must agree; a mismatch means a pruning defect.
func CheckAgreement(results []Result) error {
	want := -1
	var first Strategy
	for _, r := range results {
		if !r.Complete {
			continue
		}
		if want < 0 {
			want, first = len(r.Path), r.Strategy
			continue
		}
		if len(r.Path) != want {
			return fmt.Errorf("%w: %s found %d vertices, %s found %d",
				ErrDisagreement, first, want, r.Strategy, len(r.Path))
		}
	}

	return nil
}
