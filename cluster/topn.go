package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/proximity/distgraph"
	"github.com/katalvlaran/proximity/dsu"
	"github.com/katalvlaran/proximity/pointset"
)

// Components merges the n lightest edges and returns the resulting components
// sorted by descending size. Equal sizes keep the dsu order, smallest member first.
//
// Complexity: O(n·α(V) + V log V).
func (a *Analyzer) Components(n int) ([][]int, error) {
	if total := a.edgeCount(); n < 1 || n > total {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidEdgeCount, n, total)
	}

	m := dsu.New(a.Order())
	for i := 0; i < n; i++ {
		m.Merge(a.graph.Edge(i))
	}
	comps := m.Components()
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})

	return comps, nil
}

// TopProduct returns the product of the sizes of the Top largest components
// after merging the n lightest edges.
func (a *Analyzer) TopProduct(n int) (uint64, error) {
	comps, err := a.Components(n)
	if err != nil {
		return 0, err
	}
	k := a.opts.Top
	if len(comps) < k {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientComponents, len(comps), k)
	}

	product := uint64(1)
	for _, c := range comps[:k] {
		product *= uint64(len(c))
	}

	return product, nil
}

// TopProduct answers the bounded clustering query on ps without building the
// complete graph: only the n lightest edges are selected via distgraph.Nearest.
// The result equals New(ps).TopProduct(n).
func TopProduct(ps *pointset.PointSet, n int, opts ...Option) (uint64, error) {
	total := ps.Len() * (ps.Len() - 1) / 2
	if n < 1 || n > total {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidEdgeCount, n, total)
	}
	g, err := distgraph.Nearest(ps, n)
	if err != nil {
		return 0, err
	}

	return FromGraph(g, opts...).TopProduct(n)
}
