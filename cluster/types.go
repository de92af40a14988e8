package cluster

import (
	"errors"

	"github.com/katalvlaran/proximity/distgraph"
	"github.com/katalvlaran/proximity/pointset"
)

// ErrInvalidEdgeCount indicates a requested edge count outside [1, available edges].
var ErrInvalidEdgeCount = errors.New("cluster: edge count out of range")

// ErrInsufficientComponents indicates fewer components than the product requires.
var ErrInsufficientComponents = errors.New("cluster: not enough components")

// ErrInsufficientPoints indicates a connectivity query over 0 or 1 points.
var ErrInsufficientPoints = errors.New("cluster: at least two points are required")

// ErrDisconnected indicates that all available edges were consumed without
// reaching a single component.
var ErrDisconnected = errors.New("cluster: edges exhausted before full connectivity")

// ErrNegativeValue indicates a reducer result that cannot be reported unsigned.
var ErrNegativeValue = errors.New("cluster: reduced value is negative")

// DefaultTop is the number of largest components multiplied by TopProduct.
const DefaultTop = 3

// StopRule selects when the full-connectivity scan ends.
type StopRule int

const (
	// StopConnected ends on the merge that leaves exactly one component.
	StopConnected StopRule = iota

	// StopFrontier ends on the first edge after which every point has been touched.
	StopFrontier
)

// Options configures an Analyzer.
//
// Fields:
//
//	Top     int      — number of largest components TopProduct multiplies (values < 1 act as 1).
//	Stop    StopRule — termination rule for Bottleneck.
//	Workers int      — forwarded to distgraph.WithWorkers by New; 0 keeps the distgraph default.
type Options struct {
	Top     int
	Stop    StopRule
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithTop sets how many components TopProduct multiplies.
func WithTop(k int) Option {
	return func(o *Options) {
		o.Top = k
	}
}

// WithStopRule selects the termination rule for Bottleneck.
func WithStopRule(r StopRule) Option {
	return func(o *Options) {
		o.Stop = r
	}
}

// WithWorkers bounds edge generation concurrency in New.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// DefaultOptions returns Top = DefaultTop, Stop = StopConnected and Workers = 0.
func DefaultOptions() Options {
	return Options{Top: DefaultTop, Stop: StopConnected}
}

// Bottleneck describes the edge that completes full connectivity.
type Bottleneck struct {
	// Edge is the completing edge.
	Edge distgraph.Edge

	// From and To are the edge endpoints, From.Index == Edge.From.
	From, To pointset.Point

	// Step is the 0-based position of Edge in ascending weight order.
	Step int

	// Merges counts edges that joined distinct components up to and including Edge.
	Merges int
}

// Reducer derives the reported value from the bottleneck endpoints.
type Reducer func(a, b pointset.Point) (uint64, error)

// ProductX multiplies the X coordinates of a and b.
func ProductX(a, b pointset.Point) (uint64, error) {
	p := a.X * b.X
	if p < 0 {
		return 0, ErrNegativeValue
	}

	return uint64(p), nil
}

// Analyzer runs cluster queries against one immutable graph.
type Analyzer struct {
	points *pointset.PointSet
	graph  *distgraph.Graph
	opts   Options
}
