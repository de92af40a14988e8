// Package cluster answers connectivity queries over a distgraph.Graph.
//
// Two query classes are provided, both driven by a fresh dsu.Merger per call:
//
//   - Bounded clustering (Components, TopProduct): merge the n lightest edges
//     and inspect the resulting components, largest first. TopProduct
//     multiplies the sizes of the Top largest components (default 3).
//
//   - Full-connectivity threshold (Bottleneck, BottleneckValue, Spanning):
//     consume edges in ascending weight order until one component spans all
//     points. The edge that completes the fusion is the bottleneck, i.e. the
//     heaviest edge of the minimum spanning tree. Spanning returns the whole
//     tree in acceptance order, Kruskal style.
//
// Stop rules
//
//	StopConnected — default; stop when the merger's component count reaches 1.
//	StopFrontier  — stop when every point has been touched by a consumed edge.
//	                Touching everything does not imply connectivity (two far
//	                apart pairs are touched by two edges), so this rule can
//	                report an earlier edge. It exists for parity with
//	                frontier-set based reference outputs.
//
// Errors
//
//	ErrInvalidEdgeCount       — n < 1 or n exceeds the edges available.
//	ErrInsufficientComponents — fewer than Top components remain after merging.
//	ErrInsufficientPoints     — a connectivity query on 0 or 1 points.
//	ErrDisconnected           — a partial graph (distgraph.Nearest) ran out of
//	                            edges before reaching full connectivity.
//	ErrNegativeValue          — ProductX on endpoints whose product is negative.
//
// Concurrency: an Analyzer is read-only after construction and every query
// allocates its own merger, so queries may run from many goroutines at once.
package cluster
