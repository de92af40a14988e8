package distgraph

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/proximity/pointset"
)

// ErrInvalidInput indicates a point set too small to contain any edge.
var ErrInvalidInput = errors.New("distgraph: at least two points are required")

// ErrInvalidLimit indicates that Nearest was asked for a non-positive number
// of edges, or for more edges than the complete graph has.
var ErrInvalidLimit = errors.New("distgraph: edge limit out of range")

// ErrCoordinateRange indicates coordinates large enough to overflow squared distances.
var ErrCoordinateRange = errors.New("distgraph: coordinate exceeds supported range")

// Edge is an unordered pair of point indices with From < To.
type Edge struct {
	From, To int

	// Dist2 is the exact squared Euclidean distance between the endpoints.
	Dist2 int64
}

// Weight returns the Euclidean length of the edge.
func (e Edge) Weight() float64 {
	return math.Sqrt(float64(e.Dist2))
}

// Graph is an immutable, weight-ordered edge list over a PointSet.
type Graph struct {
	points *pointset.PointSet
	edges  []Edge
}

// Options configures graph construction.
//
// Fields:
//
//	Workers int — maximum number of goroutines filling distance rows in New.
//	              Values below 1 are treated as 1.
type Options struct {
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the number of goroutines New uses.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}
