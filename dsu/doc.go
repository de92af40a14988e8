// Package dsu implements the connectivity merger: an index-addressed
// disjoint-set (union-find) over point indices 0..n-1.
//
// Storage is two flat slices, parent and size. Find uses iterative path
// halving (each visited node is re-pointed to its grandparent), the same
// scheme lvlath's Kruskal uses; Union attaches the smaller tree under the
// larger root. Together they give near-constant amortized cost, α(n).
//
// The merger starts with every index in its own singleton component and only
// ever merges. Merge reports whether two distinct components were joined,
// which is what lets callers detect the merge that completes connectivity.
//
// Indices outside [0, n) panic like any out-of-range slice access; callers
// feed edges produced by distgraph, which are valid by construction.
//
// A Merger is not safe for concurrent mutation. Each query owns its own.
package dsu
