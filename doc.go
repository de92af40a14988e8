// Package proximity is a connectivity and clustering engine for 3D integer
// point sets.
//
// Given n labeled points it derives the complete graph of pairwise Euclidean
// distances and answers two questions as edges are taken in ascending order:
//
//   - which components form after the N shortest edges, and how large the
//     biggest of them are;
//   - which edge finally fuses everything into one component (the minimum
//     spanning tree bottleneck).
//
// Subpackages, leaves first:
//
//	pointset/  — immutable, index-addressed 3D points and exact distances
//	distgraph/ — sorted complete edge list (parallel build), bounded Nearest
//	             selection, gonum export
//	dsu/       — flat-array union-find with path halving and union by size
//	cluster/   — Analyzer: TopProduct, Components, Bottleneck, Spanning
//
// Quick example:
//
//	ps := pointset.FromTriples([][3]int64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 10, 10}})
//	a, _ := cluster.New(ps, cluster.WithTop(2))
//	p, _ := a.TopProduct(2)   // {A,B,C}·{D} = 3
//	b, _ := a.Bottleneck()    // edge C–D
//
// The engine performs no I/O and never logs; parsing input and presenting
// results belong to the caller.
package proximity
