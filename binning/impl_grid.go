// SPDX-License-Identifier: MIT

package binning

import (
	"math"

	"github.com/katalvlaran/histbin/extent"
)

// TensorGrid is the full Cartesian product of uniform linear axes.
//
// Index encoding: stride_0 = 1, stride_i = N_0·…·N_{i-1}, so axis 0 varies
// fastest and index = Σ bin_i · stride_i.
type TensorGrid struct {
	axes    []*UniformLinear
	strides []int
	total   int
}

// NewTensorGrid validates every axis and precomputes strides.
//
// Errors: ErrNoBins (no axes, or N < 1 on an axis), ErrBinningNotIncreasing,
// ErrTooManyBins (Π N overflows int).
// Π N is checked before any axis materializes its edges.
// Complexity: O(Σ N).
func NewTensorGrid(axes []Axis) (*TensorGrid, error) {
	if len(axes) == 0 {
		return nil, binningErrorf("TensorGrid", ErrNoBins, "no axes")
	}
	g := &TensorGrid{
		axes:    make([]*UniformLinear, len(axes)),
		strides: make([]int, len(axes)),
		total:   1,
	}
	for i, ax := range axes {
		if ax.N < 1 {
			return nil, binningErrorf("TensorGrid", ErrNoBins, "axis %d: n=%d", i, ax.N)
		}
		if g.total > math.MaxInt/ax.N {
			return nil, binningErrorf("TensorGrid", ErrTooManyBins, "axis %d", i)
		}
		g.strides[i] = g.total
		g.total *= ax.N
	}
	for i, ax := range axes {
		u, err := NewUniformLinear(ax.Min, ax.Max, ax.N)
		if err != nil {
			return nil, binningErrorf("TensorGrid", err, "axis %d", i)
		}
		g.axes[i] = u
	}

	return g, nil
}

// LinSpaceND builds a tensor-grid Binning, one uniform axis per Axis.
// Labels shorter than len(axes) are padded with "".
//
// Classification computes each axis' local bin with the LinSpace rule and
// returns NPos on the first out-of-range axis.
//
// Errors: see NewTensorGrid; ErrMismatchedAxisCount for surplus labels.
// Complexity: build O(Π N · d), Find O(d).
func LinSpaceND(axes []Axis, labels []string, opts ...Option) (*Binning, error) {
	s, err := NewTensorGrid(axes)
	if err != nil {
		return nil, err
	}

	return New(s, labels, opts...)
}

func (*TensorGrid) sealed() {}

// Kind returns KindTensorGrid.
func (*TensorGrid) Kind() Kind { return KindTensorGrid }

// Dims returns the number of axes.
func (g *TensorGrid) Dims() int { return len(g.axes) }

// Len returns Π N.
func (g *TensorGrid) Len() int { return g.total }

// Boxes returns every grid cell in index order (axis 0 fastest).
func (g *TensorGrid) Boxes() []extent.Box {
	out := make([]extent.Box, g.total)
	for bin := range out {
		b := make(extent.Box, len(g.axes))
		rem := bin
		for i, ax := range g.axes {
			b[i] = ax.Extent(rem % ax.n)
			rem /= ax.n
		}
		out[bin] = b
	}

	return out
}

// Classify maps point to its cell.
func (g *TensorGrid) Classify(point []float64) (Index, error) {
	if err := checkPoint(KindTensorGrid, point, len(g.axes)); err != nil {
		return NPos, err
	}
	idx := 0
	for i, ax := range g.axes {
		local := ax.bin(point[i])
		if local == NPos {
			return NPos, nil
		}
		idx += local * g.strides[i]
	}

	return idx, nil
}
