package distgraph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/proximity/pointset"
)

// Points returns the point set the graph was built from.
func (g *Graph) Points() *pointset.PointSet {
	return g.points
}

// Order returns the number of vertices (points).
func (g *Graph) Order() int {
	return g.points.Len()
}

// Len returns the number of edges held.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Complete reports whether the graph holds all C(n,2) edges.
func (g *Graph) Complete() bool {
	return len(g.edges) == pairCount(g.Order())
}

// Edge returns the i-th lightest edge. It panics if i is out of range.
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Edges returns a copy of all edges in ascending weight order.
func (g *Graph) Edges() []Edge {
	return g.Prefix(len(g.edges))
}

// Prefix returns a copy of the n lightest edges; n is clamped to [0, Len()].
func (g *Graph) Prefix(n int) []Edge {
	n = max(0, min(n, len(g.edges)))
	out := make([]Edge, n)
	copy(out, g.edges[:n])

	return out
}

// Gonum exports the graph as a gonum weighted undirected graph whose node IDs
// are point indices. Every point becomes a node even if no held edge touches it.
// Absent pairs report +Inf weight.
func (g *Graph) Gonum() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Order(); i++ {
		wg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.edges {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To)), e.Weight()))
	}

	return wg
}
