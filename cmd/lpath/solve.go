package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lpath/converters"
	"github.com/katalvlaran/lpath/core"
	"github.com/katalvlaran/lpath/longest"
	"github.com/katalvlaran/lpath/metrics"
)

// methodTitles are the human-readable names printed on the first report line.
var methodTitles = map[longest.Strategy]string{
	longest.BruteForce:         "brute force",
	longest.BranchAndBound:     "branch and bound",
	longest.FastBound:          "fast bound",
	longest.BruteForceComplete: "brute force (complete)",
}

func newSolveCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "solve [graph-file]",
		Short: "Find a longest simple path with one strategy",
		Long: `Reads a graph (stdin when no file is given), runs the selected search method
and prints:

  Search method: <name>
  length: <edges>
  longest_path: <v0> <v1> ...
  time: <seconds>`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runSolve(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags.register(cmd)
	flags.registerArtefacts(cmd)

	return cmd
}

// runSolve executes one search end to end.
func runSolve(ctx context.Context, cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(stderr, cfg.LogLevel)
	strategy, err := longest.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	// 1) Input.
	g, err := readInput(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("vertices", g.Order()).
		Int("edges", g.EdgeCount()).
		Bool("directed", g.Directed()).
		Msg("graph loaded")

	// 2) Improvement sinks: the -p log file and debug-level structured events.
	opts := longest.Options{Strategy: strategy, TimeLimit: cfg.TimeLimit}
	var fileSink longest.LogSink
	if cfg.LogPath != "" {
		var closeSink func() error
		if fileSink, closeSink, err = progressSink(cfg.LogPath, stdout); err != nil {
			return err
		}
		defer func() {
			if cerr := closeSink(); cerr != nil {
				logger.Warn().Err(cerr).Str("path", cfg.LogPath).Msg("closing improvement log")
			}
		}()
	}
	var eventSink longest.LogSink
	if logger.GetLevel() <= zerolog.DebugLevel {
		eventSink = longest.NewZerologSink(logger)
	}
	opts.Sink = teeSink(fileSink, eventSink)

	// 3) Search; SIGINT ends it early with the best path so far.
	fmt.Fprintf(stdout, "Search method: %s\n", methodTitles[strategy])
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	res, solveErr := longest.Solve(ctx, g, opts)

	rec := metrics.NewRecorder()
	rec.Observe(res, solveErr)
	interrupted := errors.Is(solveErr, longest.ErrInterrupted)
	if solveErr != nil && !interrupted {
		return solveErr
	}

	// 4) Result check and report. An early interrupt may leave no path at all.
	if interrupted && len(res.Path) == 0 {
		writeReport(stdout, res)
		return withCode(exitInterrupted, solveErr)
	}
	if err = longest.ValidatePath(g, res.Path); err != nil {
		fmt.Fprintln(stderr, "FAIL: Path is invalid.")
		return withCode(exitInvalidPath, err)
	}
	writeReport(stdout, res)
	logger.Info().
		Str("strategy", strategy.String()).
		Int("length", res.Edges()).
		Bool("complete", res.Complete).
		Dur("elapsed", res.Elapsed).
		Interface("stats", res.Stats).
		Msg("search finished")

	// 5) Optional artefacts.
	if err = writeArtefacts(cfg, stdout, g, res, rec); err != nil {
		return err
	}
	if interrupted {
		return withCode(exitInterrupted, solveErr)
	}

	return nil
}

// writeReport prints the length, path and time lines.
func writeReport(w io.Writer, res longest.Result) {
	fmt.Fprintf(w, "length: %d\n", res.Edges())
	fmt.Fprint(w, "longest_path:")
	for _, v := range res.Path {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "time: %f\n", res.Elapsed.Seconds())
}

// writeArtefacts writes whichever optional artefacts cfg names.
func writeArtefacts(cfg Config, stdout io.Writer, g *core.Graph, res longest.Result, rec *metrics.Recorder) error {
	if cfg.DOTFile != "" {
		f, err := os.Create(cfg.DOTFile)
		if err != nil {
			return fmt.Errorf("dot file: %w", err)
		}
		err = converters.WriteDOT(f, g, res.Path)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("dot file: %w", err)
		}
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	if cfg.ReportFile != "" {
		if err := writeJSONReport(cfg.ReportFile, stdout, res); err != nil {
			return err
		}
	}

	return nil
}
