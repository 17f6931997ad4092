package longest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors of the longest package.
var (
	// ErrUnsupportedStrategy is returned for an unknown Strategy value or name.
	ErrUnsupportedStrategy = errors.New("longest: unsupported strategy")

	// ErrBadTimeLimit is returned for a negative Options.TimeLimit.
	ErrBadTimeLimit = errors.New("longest: negative time limit")

	// ErrInterrupted is returned, together with a partial Result, when the
	// search was stopped by its context or time limit.
	ErrInterrupted = errors.New("longest: search interrupted")

	// ErrInvalidPath indicates a path that is not a simple path of the graph.
	ErrInvalidPath = errors.New("longest: invalid path")

	// ErrEmptyPath indicates an empty path for a graph with at least one vertex.
	ErrEmptyPath = errors.New("longest: empty path")

	// ErrDisagreement indicates exact strategies reported different optimal lengths.
	ErrDisagreement = errors.New("longest: strategies disagree on optimal length")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// BruteForce enumerates every simple path from roots 0..N-1 and stops
	// early once a Hamiltonian path is found.
	BruteForce Strategy = iota

	// BranchAndBound prunes with the reachability bound.
	BranchAndBound

	// FastBound prunes with memoized per-root bounds, roots by in-degree.
	FastBound

	// BruteForceComplete enumerates everything, ignoring the Hamiltonian shortcut.
	BruteForceComplete
)

// strategyNames are the canonical command-line names, indexed by Strategy.
var strategyNames = [...]string{
	BruteForce:         "BRUTE_FORCE",
	BranchAndBound:     "BRANCH_N_BOUND",
	FastBound:          "FAST_BOUND",
	BruteForceComplete: "BRUTE_FORCE_COMPLETE",
}

// String returns the canonical name, e.g. "BRANCH_N_BOUND".
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}

	return strategyNames[s]
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool { return s >= 0 && int(s) < len(strategyNames) }

// ParseStrategy maps a canonical name (case-insensitive) to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BruteForce, BranchAndBound, FastBound, BruteForceComplete}
}

// Options configures a Solve call.
type Options struct {
	// Strategy selects the algorithm. Default: FastBound.
	Strategy Strategy

	// Sink, if non-nil, is told about every strict improvement of the best
	// path. It must not retain or modify the slice it receives.
	Sink LogSink

	// TimeLimit bounds wall time; 0 means unlimited. On expiry Solve returns
	// the best path so far and ErrInterrupted.
	TimeLimit time.Duration
}

// DefaultOptions returns FastBound with no sink and no time limit.
func DefaultOptions() Options {
	return Options{
		Strategy:  FastBound,
		Sink:      nil,
		TimeLimit: 0,
	}
}

// Stats are counters collected during one search.
type Stats struct {
	// Extensions counts vertices pushed onto the path (roots excluded).
	Extensions int
	// Backtracks counts backtrack transitions, i.e. maximal-path checks.
	Backtracks int
	// Pruned counts candidate edges skipped by a bound.
	Pruned int
	// OracleCalls counts reachability bound evaluations (BranchAndBound).
	OracleCalls int
	// Improvements counts strict improvements of the best path.
	Improvements int
	// Roots counts roots whose exploration started.
	Roots int
}

// Result is the outcome of a search.
type Result struct {
	// Strategy that produced the result.
	Strategy Strategy

	// Path is the longest simple path found, as vertex indices. It is empty
	// only for a graph without vertices.
	Path []int

	// Complete is true when the search ran to completion (or stopped at a
	// provably optimal Hamiltonian path); Path is then optimal.
	Complete bool

	// Stats collected during the search.
	Stats Stats

	// RootBounds is the FastBound bound table: RootBounds[v] bounds the
	// vertex count of every simple path starting at v, or is -1 when v was
	// never exhausted as a root. Nil for other strategies.
	RootBounds []int

	// Elapsed is the wall time spent searching.
	Elapsed time.Duration
}

// Edges returns the path length in edges; 0 for an empty path.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
