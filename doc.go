// Package lpath is an exact longest simple path engine: given a directed or
// undirected graph, it returns a path with the most vertices and no vertex
// repeated, and proves that no longer one exists.
//
// What is inside?
//
//	core/       - index-addressed adjacency-list Graph and the read-only View contract
//	longest/    - the search strategies: BruteForce, BranchAndBound, FastBound,
//	              BruteForceComplete; result validation and progress sinks
//	builder/    - deterministic and seeded random graph fixtures
//	converters/ - text graph format, Graphviz DOT export, gonum interop
//	metrics/    - Prometheus series for search statistics
//	cmd/lpath/  - command-line driver (solve, compare, generate)
//
// Quick start:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	res, err := longest.Solve(ctx, g, longest.DefaultOptions())
//	// res.Path == [0 1 2 3], res.Edges() == 3
//
// Every strategy is exact when it runs to completion. The problem is NP-hard,
// so the strategies differ only in how much of the search tree they prune.
package lpath
