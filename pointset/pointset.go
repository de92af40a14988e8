package pointset

import (
	"fmt"
	"math"
)

// New builds a PointSet from coords, assigning Index i to coords[i].
// The input slice is copied; later changes to it do not affect the set.
//
// Complexity: O(n) time and memory.
func New(coords []Coord) *PointSet {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{Index: i, X: c.X, Y: c.Y, Z: c.Z}
	}

	return &PointSet{points: points}
}

// FromTriples is a convenience wrapper over New for [x, y, z] arrays.
func FromTriples(triples [][3]int64) *PointSet {
	coords := make([]Coord, len(triples))
	for i, t := range triples {
		coords[i] = Coord{X: t[0], Y: t[1], Z: t[2]}
	}

	return New(coords)
}

// Len returns the number of points. A nil PointSet has length 0.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}

	return len(ps.points)
}

// At returns the point with the given index.
func (ps *PointSet) At(i int) (Point, error) {
	if i < 0 || i >= ps.Len() {
		return Point{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, ps.Len())
	}

	return ps.points[i], nil
}

// Points returns a copy of all points in index order.
func (ps *PointSet) Points() []Point {
	out := make([]Point, ps.Len())
	if ps != nil {
		copy(out, ps.points)
	}

	return out
}

// Bounds returns the bounding box of the set and false when the set is empty.
func (ps *PointSet) Bounds() (Box, bool) {
	if ps.Len() == 0 {
		return Box{}, false
	}
	first := ps.points[0]
	b := Box{
		Min: Coord{X: first.X, Y: first.Y, Z: first.Z},
		Max: Coord{X: first.X, Y: first.Y, Z: first.Z},
	}
	for _, p := range ps.points[1:] {
		b.Min.X, b.Max.X = min(b.Min.X, p.X), max(b.Max.X, p.X)
		b.Min.Y, b.Max.Y = min(b.Min.Y, p.Y), max(b.Max.Y, p.Y)
		b.Min.Z, b.Max.Z = min(b.Min.Z, p.Z), max(b.Max.Z, p.Z)
	}

	return b, true
}

// InRange reports whether every coordinate lies within ±MaxCoordinate,
// which guarantees that Dist2 cannot overflow for any pair.
func (ps *PointSet) InRange() bool {
	b, ok := ps.Bounds()
	if !ok {
		return true
	}
	for _, v := range []int64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if v < -MaxCoordinate || v > MaxCoordinate {
			return false
		}
	}

	return true
}

// Dist2 returns the exact squared Euclidean distance between a and b.
func Dist2(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(Dist2(a, b)))
}
