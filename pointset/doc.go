// Package pointset holds immutable collections of labeled 3D integer points.
//
// A PointSet is built once from caller-supplied coordinates and is read-only
// afterwards. Every point carries a stable 0-based Index equal to its position
// in the input, so downstream packages (distgraph, dsu, cluster) can address
// points by plain integers.
//
// Two points may share the same coordinates; indices are always unique.
//
// Distances:
//
//	Dist2(a, b)    — exact squared Euclidean distance as int64.
//	Distance(a, b) — sqrt(Dist2) as float64, for reporting only.
//
// Comparisons between distances should use Dist2: it is exact and
// monotonic in the real distance.
//
// Concurrency: a PointSet never changes after New, so it may be shared by any
// number of goroutines without locking.
package pointset
