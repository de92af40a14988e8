package cluster

import (
	"fmt"

	"github.com/katalvlaran/proximity/distgraph"
	"github.com/katalvlaran/proximity/dsu"
)

// Bottleneck scans edges in ascending weight order and returns the edge at
// which the configured stop rule fires.
//
// Steps:
//  1. Reject point sets with fewer than two points: ErrInsufficientPoints.
//  2. Merge edges one by one into a fresh dsu.Merger.
//  3. StopConnected: stop when a successful merge leaves one component.
//     StopFrontier:  stop when the touched-index set covers all points.
//  4. If edges run out first (partial graph): ErrDisconnected.
//
// Complexity: O(E·α(V)) over the consumed prefix.
func (a *Analyzer) Bottleneck() (Bottleneck, error) {
	n := a.Order()
	if n <= 1 {
		return Bottleneck{}, fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}

	var (
		m       = dsu.New(n)
		touched = make([]bool, n)
		reached int
		merges  int
	)
	for i := 0; i < a.graph.Len(); i++ {
		e := a.graph.Edge(i)
		merged := m.Merge(e)
		if merged {
			merges++
		}

		var done bool
		switch a.opts.Stop {
		case StopFrontier:
			for _, v := range [2]int{e.From, e.To} {
				if !touched[v] {
					touched[v] = true
					reached++
				}
			}
			done = reached == n
		default:
			done = merged && m.Count() == 1
		}
		if done {
			return a.describe(e, i, merges)
		}
	}

	return Bottleneck{}, fmt.Errorf("%w: %d components left after %d edges", ErrDisconnected, m.Count(), a.graph.Len())
}

// BottleneckValue reduces the endpoints of the bottleneck edge.
func (a *Analyzer) BottleneckValue(reduce Reducer) (uint64, error) {
	b, err := a.Bottleneck()
	if err != nil {
		return 0, err
	}

	return reduce(b.From, b.To)
}

// Spanning returns the minimum spanning tree edges in acceptance order and
// their total weight. The last edge is the StopConnected bottleneck.
//
// Complexity: O(E·α(V)) over the consumed prefix.
func (a *Analyzer) Spanning() ([]distgraph.Edge, float64, error) {
	n := a.Order()
	if n <= 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}

	var (
		m     = dsu.New(n)
		tree  = make([]distgraph.Edge, 0, n-1)
		total float64
	)
	for i := 0; i < a.graph.Len() && m.Count() > 1; i++ {
		e := a.graph.Edge(i)
		if m.Merge(e) {
			tree = append(tree, e)
			total += e.Weight()
		}
	}
	if m.Count() > 1 {
		return nil, 0, fmt.Errorf("%w: %d components left", ErrDisconnected, m.Count())
	}

	return tree, total, nil
}

func (a *Analyzer) describe(e distgraph.Edge, step, merges int) (Bottleneck, error) {
	from, err := a.points.At(e.From)
	if err != nil {
		return Bottleneck{}, err
	}
	to, err := a.points.At(e.To)
	if err != nil {
		return Bottleneck{}, err
	}

	return Bottleneck{Edge: e, From: from, To: to, Step: step, Merges: merges}, nil
}
