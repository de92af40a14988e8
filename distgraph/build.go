package distgraph

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/proximity/pointset"
)

// New computes every pairwise edge of ps and sorts them by ascending weight.
//
// Steps:
//  1. Validate: ps has at least two points, all within the supported range.
//  2. Allocate the C(n,2) edge slice; row i owns slots [rowOffset(i), rowOffset(i+1)).
//  3. Fill rows concurrently, at most opts.Workers at a time.
//  4. sort.SliceStable by Dist2, so equal weights keep enumeration order.
//
// Complexity: O(n² log n) time, O(n²) memory.
func New(ps *pointset.PointSet, opts ...Option) (*Graph, error) {
	if err := validate(ps); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	n := ps.Len()
	pts := ps.Points()
	edges := make([]Edge, pairCount(n))

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < n-1; i++ {
		row := edges[rowOffset(n, i):rowOffset(n, i+1)]
		g.Go(func() error {
			fillRow(row, pts, i)
			return nil
		})
	}
	// Rows never fail; Wait only joins the workers.
	_ = g.Wait()

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Dist2 < edges[b].Dist2
	})

	return &Graph{points: ps, edges: edges}, nil
}

// fillRow writes the edges (i, j) for j = i+1..n-1 into row.
func fillRow(row []Edge, pts []pointset.Point, i int) {
	for k := range row {
		j := i + 1 + k
		row[k] = Edge{From: i, To: j, Dist2: pointset.Dist2(pts[i], pts[j])}
	}
}

// validate rejects point sets that cannot produce a well-formed graph.
func validate(ps *pointset.PointSet) error {
	if n := ps.Len(); n < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidInput, n)
	}
	if !ps.InRange() {
		return fmt.Errorf("%w: limit ±%d", ErrCoordinateRange, pointset.MaxCoordinate)
	}

	return nil
}

// pairCount is C(n,2).
func pairCount(n int) int {
	return n * (n - 1) / 2
}

// rowOffset is the position of edge (i, i+1) in enumeration order.
func rowOffset(n, i int) int {
	return i * (2*n - i - 1) / 2
}
