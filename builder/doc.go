// SPDX-License-Identifier: MIT

// Package builder generates core.Graph fixtures for the longest-path engines:
// deterministic topologies (Empty, Path, Cycle, Complete) and seeded random
// graphs (RandomSparse, RandomEdges, AverageDegree).
//
// The package follows a functional-options design:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(12, 0.25),
//	)
//
// Guarantees:
//
//   - Constructors append fresh vertices; several constructors compose into a
//     disjoint union whose indices follow constructor order.
//   - Fixed seed, options and constructor order ⇒ identical graph, arc by arc.
//   - Invalid parameters surface as sentinel errors (errors.Is); only option
//     constructors such as WithRand(nil) panic.
//   - No global random state: stochastic constructors require WithSeed or WithRand.
package builder
