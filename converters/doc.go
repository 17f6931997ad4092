// Package converters moves core.Graph values in and out of the formats the
// lpath tools exchange:
//
//   - the plain text graph format: the vertex count N on the first line,
//     then one "u v" pair per line (ReadGraph, WriteGraph);
//   - Graphviz DOT with an optional highlighted path (WriteDOT);
//   - gonum graph/simple graphs (ToGonum, FromGonum).
//
// Readers are lenient about trailing content: edge parsing stops silently at
// the first token pair that is not two integers.
// Endpoints outside [0, N) are rejected with a wrapped core.ErrVertexOutOfRange.
package converters
