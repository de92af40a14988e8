// Package distgraph derives the complete weighted graph over a pointset.PointSet.
//
// What
//
//   - For every unordered pair of distinct indices i < j the package emits one
//     Edge{From: i, To: j} weighted by the Euclidean distance between the points.
//   - Edges are ordered by non-decreasing weight. Ties keep enumeration order
//     (i ascending, then j ascending), i.e. a stable sort by weight only.
//
// Weights are carried as exact squared integer distances (Edge.Dist2) and only
// converted to float64 by Edge.Weight for reporting. Sorting on Dist2 is
// therefore exact, with no floating-point ties introduced by rounding.
//
// Constructors
//
//   - New(ps, opts...)   — all C(n,2) edges, sorted. Rows of the distance
//     triangle are filled concurrently by a bounded errgroup (WithWorkers);
//     every row owns a fixed slot range, so the result does not depend on
//     the worker count.
//   - Nearest(ps, limit) — only the limit lightest edges, selected with an
//     ordered B-tree in O(n²·log limit) time and O(limit) memory. The result
//     equals New(ps).Prefix(limit), ties included.
//
// Errors
//
//   - ErrInvalidInput    — fewer than two points (no edge exists).
//   - ErrInvalidLimit    — Nearest limit outside [1, C(n,2)].
//   - ErrCoordinateRange — a coordinate exceeds ±pointset.MaxCoordinate.
//
// A Graph is immutable after construction and safe for concurrent readers.
// Gonum exports it as a gonum simple.WeightedUndirectedGraph for interop.
package distgraph
