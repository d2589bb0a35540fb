// SPDX-License-Identifier: MIT

package binning

import (
	"math"

	"github.com/katalvlaran/histbin/extent"
)

// UniformLinear splits [min, max) into n bins of equal width.
type UniformLinear struct {
	min, max float64
	n        int
	step     float64
	edges    []float64 // n+1 edges, edges[0]=min, edges[n]=max
}

// NewUniformLinear validates min < max (finite) and n >= 1, and that the n+1
// edges are representable: the width max-min must not overflow and every
// edge must lie strictly above the previous one.
//
// Errors: ErrBinningNotIncreasing, ErrNoBins.
// Complexity: O(n).
func NewUniformLinear(min, max float64, n int) (*UniformLinear, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, binningErrorf("UniformLinear", ErrBinningNotIncreasing, "min=%v, max=%v", min, max)
	}
	if n < 1 {
		return nil, binningErrorf("UniformLinear", ErrNoBins, "n=%d", n)
	}
	if math.IsInf(max-min, 0) {
		return nil, binningErrorf("UniformLinear", ErrBinningNotIncreasing, "width of [%v, %v) overflows", min, max)
	}
	step := (max - min) / float64(n)
	if !(step > 0) {
		return nil, binningErrorf("UniformLinear", ErrBinningNotIncreasing, "step of %d bins over [%v, %v) underflows", n, min, max)
	}

	edges := make([]float64, n+1)
	edges[0], edges[n] = min, max
	for i := 1; i < n; i++ {
		edges[i] = min + float64(i)*step
	}
	if err := checkEdges("UniformLinear", edges); err != nil {
		return nil, err
	}

	return &UniformLinear{min: min, max: max, n: n, step: step, edges: edges}, nil
}

// checkEdges rejects generated edges that collapse or leave [edges[0], edges[n]].
func checkEdges(method string, edges []float64) error {
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return binningErrorf(method, ErrBinningNotIncreasing,
				"edge[%d]=%v not above edge[%d]=%v", i, edges[i], i-1, edges[i-1])
		}
	}

	return nil
}

// locate corrects a floored estimate i so that edges[i] <= x < edges[i+1].
// x must already lie in [edges[0], edges[len-1]).
func locate(edges []float64, i int, x float64) Index {
	n := len(edges) - 1
	switch {
	case i < 0:
		i = 0
	case i >= n:
		i = n - 1
	}
	for i > 0 && x < edges[i] {
		i--
	}
	for i < n-1 && x >= edges[i+1] {
		i++
	}

	return i
}

// LinSpace builds a 1-D Binning of n equal-width bins over [min, max).
//
// Box i is [min + i·step, min + (i+1)·step) with step = (max-min)/n; the last
// upper edge is pinned to max. Classification is closed-form:
// floor((x-min)/step) for min <= x < max, NPos otherwise, corrected by at most
// a step against the stored edges so the result always matches Boxes.
//
// Errors: ErrBinningNotIncreasing (min >= max), ErrNoBins (n < 1).
// Complexity: build O(n), Find O(1).
func LinSpace(min, max float64, n int, label string, opts ...Option) (*Binning, error) {
	s, err := NewUniformLinear(min, max, n)
	if err != nil {
		return nil, err
	}

	return New(s, []string{label}, opts...)
}

func (*UniformLinear) sealed() {}

// Kind returns KindUniformLinear.
func (*UniformLinear) Kind() Kind { return KindUniformLinear }

// Dims returns 1.
func (*UniformLinear) Dims() int { return 1 }

// Len returns the number of bins.
func (u *UniformLinear) Len() int { return u.n }

// Extent returns the interval of bin i; i must be in [0, Len()).
func (u *UniformLinear) Extent(i int) extent.Extent {
	return extent.Extent{Min: u.edges[i], Max: u.edges[i+1]}
}

// Boxes returns the n one-axis boxes in index order.
func (u *UniformLinear) Boxes() []extent.Box {
	out := make([]extent.Box, u.n)
	for i := range out {
		out[i] = extent.Box{u.Extent(i)}
	}

	return out
}

// Classify maps point[0] to its bin.
func (u *UniformLinear) Classify(point []float64) (Index, error) {
	if err := checkPoint(KindUniformLinear, point, 1); err != nil {
		return NPos, err
	}

	return u.bin(point[0]), nil
}

// bin applies the closed-form rule to an already validated coordinate, then
// corrects the floor against the stored edges so that x always lands in
// Extent(bin).
func (u *UniformLinear) bin(x float64) Index {
	if x < u.min || x >= u.max {
		return NPos
	}

	return locate(u.edges, int(math.Floor((x-u.min)/u.step)), x)
}
