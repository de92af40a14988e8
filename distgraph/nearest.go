package distgraph

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/proximity/pointset"
)

// edgeLess orders edges by weight, then by enumeration position (From, To).
// Because pairs are generated in (From, To) order, this is exactly the order
// a stable sort by weight produces.
func edgeLess(a, b Edge) bool {
	if a.Dist2 != b.Dist2 {
		return a.Dist2 < b.Dist2
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Nearest returns a Graph holding only the limit lightest edges of ps.
//
// The candidate set lives in a B-tree capped at limit items: each new pair is
// admitted only if it sorts strictly before the current maximum, which is
// then evicted. Equal-weight pairs arriving later never displace earlier ones.
//
// Complexity: O(n²·log limit) time, O(limit) memory.
func Nearest(ps *pointset.PointSet, limit int) (*Graph, error) {
	if err := validate(ps); err != nil {
		return nil, err
	}
	n := ps.Len()
	if total := pairCount(n); limit < 1 || limit > total {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLimit, limit, total)
	}

	pts := ps.Points()
	tr := btree.NewBTreeGOptions(edgeLess, btree.Options{NoLocks: true})
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			e := Edge{From: i, To: j, Dist2: pointset.Dist2(pts[i], pts[j])}
			if tr.Len() < limit {
				tr.Set(e)
				continue
			}
			if worst, _ := tr.Max(); edgeLess(e, worst) {
				tr.PopMax()
				tr.Set(e)
			}
		}
	}

	return &Graph{points: ps, edges: tr.Items()}, nil
}
