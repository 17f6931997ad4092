package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lpath/longest"
	"github.com/katalvlaran/lpath/metrics"
)

func newCompareCmd() *cobra.Command {
	var (
		flags   runFlags
		methods []string
	)
	cmd := &cobra.Command{
		Use:   "compare [graph-file]",
		Short: "Run several strategies concurrently and check that they agree",
		Long: `Runs every selected method on the same graph, prints one line per method
and fails with exit code 2 if two complete runs report different lengths.
With -p every improvement of every method goes to the same log.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			strategies, err := parseStrategies(methods)
			if err != nil {
				return err
			}
			return runCompare(cmd.Context(), cfg, strategies, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&methods, "methods", nil, "comma-separated methods (default all)")

	return cmd
}

// parseStrategies maps method names; an empty list selects every strategy.
func parseStrategies(names []string) ([]longest.Strategy, error) {
	if len(names) == 0 {
		return longest.Strategies(), nil
	}
	out := make([]longest.Strategy, 0, len(names))
	for _, n := range names {
		s, err := longest.ParseStrategy(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// runCompare runs the strategies through longest.SolveAll and reports.
func runCompare(ctx context.Context, cfg Config, strategies []longest.Strategy, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(stderr, cfg.LogLevel)
	g, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	opts := longest.Options{TimeLimit: cfg.TimeLimit}
	if cfg.LogPath != "" {
		sink, closeSink, err := progressSink(cfg.LogPath, stdout)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeSink(); cerr != nil {
				logger.Warn().Err(cerr).Str("path", cfg.LogPath).Msg("closing improvement log")
			}
		}()
		opts.Sink = sink
	}
	results, solveErr := longest.SolveAll(ctx, g, strategies, opts)
	if solveErr != nil && !errors.Is(solveErr, longest.ErrInterrupted) {
		return solveErr
	}

	rec := metrics.NewRecorder()
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "method\tlength\tcomplete\ttime")
	for _, res := range results {
		if !res.Strategy.Valid() {
			continue
		}
		var observed error
		if !res.Complete {
			observed = longest.ErrInterrupted
		}
		rec.Observe(res, observed)
		fmt.Fprintf(tw, "%s\t%d\t%t\t%f\n", res.Strategy, res.Edges(), res.Complete, res.Elapsed.Seconds())
		if len(res.Path) > 0 {
			if err = longest.ValidatePath(g, res.Path); err != nil {
				_ = tw.Flush()
				fmt.Fprintln(stderr, "FAIL: Path is invalid.")
				return withCode(exitInvalidPath, fmt.Errorf("%s: %w", res.Strategy, err))
			}
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if err = longest.CheckAgreement(results); err != nil {
		return withCode(exitInvalidPath, err)
	}
	logger.Info().Int("strategies", len(strategies)).Msg("comparison finished")

	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	if solveErr != nil {
		return withCode(exitInterrupted, solveErr)
	}

	return nil
}
