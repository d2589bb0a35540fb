// SPDX-License-Identifier: MIT

package binning

import "github.com/katalvlaran/histbin/extent"

// Index is a zero-based bin index, or NPos.
type Index = int

// NPos is returned when a point matches no bin. It differs from every valid index.
const NPos Index = -1

// Kind tags the lookup strategy behind a Binning.
type Kind uint8

const (
	// KindUniformLinear is a 1-D equal-width partition.
	KindUniformLinear Kind = iota + 1
	// KindUniformLog is a 1-D partition equal-width in log space.
	KindUniformLog
	// KindTensorGrid is the Cartesian product of uniform linear axes.
	KindTensorGrid
	// KindSortedEdges is a 1-D partition given by strictly increasing edges.
	KindSortedEdges
	// KindBoxSet is an arbitrary validated set of non-overlapping boxes.
	KindBoxSet
	// KindProduct is the Cartesian product of independent strategies.
	KindProduct
)

// String returns a short lowercase name, also used as a metric label.
func (k Kind) String() string {
	switch k {
	case KindUniformLinear:
		return "uniform_linear"
	case KindUniformLog:
		return "uniform_log"
	case KindTensorGrid:
		return "tensor_grid"
	case KindSortedEdges:
		return "sorted_edges"
	case KindBoxSet:
		return "box_set"
	case KindProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Mode selects what Find does with malformed points.
type Mode uint8

const (
	// Strict returns ErrMalformedPoint to the caller.
	Strict Mode = iota
	// Permissive returns NPos with a nil error and hands the condition to the
	// Binning's Reporter.
	Permissive
)

// String returns "strict" or "permissive".
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Axis declares one uniform linear axis of a tensor grid.
type Axis struct {
	Min float64
	Max float64
	N   int
}

// Strategy is the closed set of lookup implementations a Binning can carry:
// *UniformLinear, *UniformLog, *TensorGrid, *SortedEdges, *BoxSet and *Cartesian.
//
// Every implementation is immutable after construction; Classify is a pure
// function of the strategy and the point, safe for concurrent use.
type Strategy interface {
	// Kind returns the strategy tag.
	Kind() Kind
	// Dims returns the number of coordinates consulted.
	Dims() int
	// Len returns the number of bins.
	Len() int
	// Boxes materializes the bin boxes in index order.
	Boxes() []extent.Box
	// Classify maps point to a bin index or NPos. Malformed input yields an
	// error wrapping ErrMalformedPoint; a broken invariant yields
	// ErrCatastrophicBinningFailure.
	Classify(point []float64) (Index, error)

	sealed()
}

// Reporter receives malformed-point conditions swallowed in Permissive mode.
// Implementations must be safe for concurrent use and must not retain or
// modify point after returning.
type Reporter interface {
	ReportMalformed(kind Kind, point []float64, err error)
}

type nopReporter struct{}

func (nopReporter) ReportMalformed(Kind, []float64, error) {}
