package distgraph_test

import (
	"math/rand"

	"github.com/katalvlaran/proximity/pointset"
)

// linePoints returns A=(0,0,0), B=(1,0,0), C=(2,0,0), D=(10,10,10).
func linePoints() *pointset.PointSet {
	return pointset.FromTriples([][3]int64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 10, 10}})
}

// randomPoints creates n points with coordinates in [-span, span], seeded for reproducibility.
func randomPoints(n int, span int64, seed int64) *pointset.PointSet {
	r := rand.New(rand.NewSource(seed))
	coords := make([]pointset.Coord, n)
	for i := range coords {
		coords[i] = pointset.Coord{
			X: r.Int63n(2*span+1) - span,
			Y: r.Int63n(2*span+1) - span,
			Z: r.Int63n(2*span+1) - span,
		}
	}

	return pointset.New(coords)
}

// latticePoints builds a k×k×k integer cube; nearly every distance repeats,
// which stresses tie handling.
func latticePoints(k int64) *pointset.PointSet {
	var coords []pointset.Coord
	for x := int64(0); x < k; x++ {
		for y := int64(0); y < k; y++ {
			for z := int64(0); z < k; z++ {
				coords = append(coords, pointset.Coord{X: x, Y: y, Z: z})
			}
		}
	}

	return pointset.New(coords)
}
