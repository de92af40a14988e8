package pointset

import "errors"

// ErrIndexOutOfRange is returned by At when the requested index is not in [0, Len()).
var ErrIndexOutOfRange = errors.New("pointset: index out of range")

// MaxCoordinate bounds the absolute value of every coordinate that keeps
// squared distances representable in int64: 3·(2·MaxCoordinate)² < 2⁶³.
const MaxCoordinate int64 = 876_706_528

// Coord is a raw (x, y, z) triple supplied by the caller.
type Coord struct {
	X, Y, Z int64
}

// Point is a Coord labeled with its load-order index.
type Point struct {
	// Index is the 0-based position of the point in the input.
	Index int

	X, Y, Z int64
}

// Box is an axis-aligned bounding box over a PointSet.
type Box struct {
	Min, Max Coord
}

// PointSet is an immutable, index-addressed collection of points.
type PointSet struct {
	points []Point
}
