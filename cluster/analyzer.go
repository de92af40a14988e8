package cluster

import (
	"github.com/katalvlaran/proximity/distgraph"
	"github.com/katalvlaran/proximity/pointset"
)

// New builds the complete distance graph of ps and wraps it in an Analyzer.
//
// Point sets with fewer than two points are accepted: they have no edges, so
// queries report ErrInvalidEdgeCount or ErrInsufficientPoints rather than
// failing here. Coordinate range errors from distgraph are returned as is.
func New(ps *pointset.PointSet, opts ...Option) (*Analyzer, error) {
	o := resolve(opts)
	a := &Analyzer{points: ps, opts: o}
	if ps.Len() < 2 {
		return a, nil
	}

	var gopts []distgraph.Option
	if o.Workers > 0 {
		gopts = append(gopts, distgraph.WithWorkers(o.Workers))
	}
	g, err := distgraph.New(ps, gopts...)
	if err != nil {
		return nil, err
	}
	a.graph = g

	return a, nil
}

// FromGraph wraps an existing graph, complete or partial.
func FromGraph(g *distgraph.Graph, opts ...Option) *Analyzer {
	return &Analyzer{points: g.Points(), graph: g, opts: resolve(opts)}
}

// Graph returns the underlying graph; nil when the point set has fewer than two points.
func (a *Analyzer) Graph() *distgraph.Graph {
	return a.graph
}

// Order returns the number of points.
func (a *Analyzer) Order() int {
	return a.points.Len()
}

// edgeCount returns the number of edges available to queries.
func (a *Analyzer) edgeCount() int {
	if a.graph == nil {
		return 0
	}

	return a.graph.Len()
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Top < 1 {
		o.Top = 1
	}

	return o
}
