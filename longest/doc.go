// Package longest computes a longest simple path (maximum vertex count, no
// repeated vertex) in a directed or undirected graph supplied as a core.View.
//
// What:
//
//   - BruteForce:         exhaustive DFS from every root 0..N-1, stopping as
//     soon as a Hamiltonian path (N vertices) is found.
//   - BruteForceComplete: the same enumeration without the Hamiltonian
//     shortcut; used to cross-check the pruning strategies.
//   - BranchAndBound:     DFS that skips an edge v→w whenever the number of
//     vertices reachable from w outside the current path cannot lift the
//     path above the incumbent.
//   - FastBound:          DFS over roots ordered by descending in-degree that
//     memoizes, per exhausted root, an upper bound on every path starting
//     there, and prunes with those cached bounds instead of recomputing
//     reachability.
//
// Every strategy is exact: run to completion it returns a provably longest
// path. Among equally long paths the first one discovered wins, which makes
// results a deterministic function of neighbor order and root order.
//
// How:
//
//   - One backtracking engine shared by all strategies. The call stack is an
//     index-addressed array of (vertex, resume cursor) frames, so depth is
//     bounded only by memory and no recursion is involved.
//   - All scratch (path, membership bitset, cursors, oracle stack, bound
//     table) is allocated once per Solve call and reused; the inner loop
//     does not allocate.
//   - The incumbent is updated only at backtrack points, so each maximal path
//     is scored exactly once and the optional LogSink fires once per strict
//     improvement.
//
// Concurrency:
//
//   - A single Solve call is sequential. Independent calls may share one
//     immutable View; SolveAll runs several strategies that way.
//   - Cancellation: the engine polls ctx.Done() once per loop iteration and
//     returns the best path found so far together with ErrInterrupted.
//
// Complexity:
//
//   - Worst case exponential in N (the problem is NP-hard).
//   - Memory: O(N) for path state, O(N+E) for the reachability oracle stack,
//     O(N) for the bound table.
//
// Errors:
//
//   - ErrUnsupportedStrategy  unknown Strategy value or name.
//   - ErrBadTimeLimit         negative Options.TimeLimit.
//   - ErrInterrupted          search stopped early by ctx or TimeLimit.
//   - ErrInvalidPath          ValidatePath found a missing edge, repeat or bad index.
//   - ErrEmptyPath            ValidatePath got an empty path for a non-empty graph.
//   - ErrDisagreement         CheckAgreement saw different optimal lengths.
//   - core.ErrVertexOutOfRange  the View breaks its contract (checked up front).
package longest
