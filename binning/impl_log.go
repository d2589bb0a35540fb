// SPDX-License-Identifier: MIT

package binning

import (
	"math"

	"github.com/katalvlaran/histbin/extent"
)

// naturalBase marks the natural logarithm.
const naturalBase = 0

// UniformLog splits [min, max) into n bins of equal width in log space.
type UniformLog struct {
	min, max float64
	n        int
	base     float64 // naturalBase, or a finite base > 0, != 1
	logMin   float64
	step     float64
	edges    []float64 // n+1 real-space edges, edges[0]=min, edges[n]=max
}

// NewUniformLog validates the axis and precomputes real-space edges.
// base == 0 selects the natural logarithm.
//
// Errors: ErrInvalidLogarithmicEdge (min <= 0), ErrBinningNotIncreasing,
// ErrInvalidLogarithmicBase, ErrNoBins.
// Complexity: O(n).
func NewUniformLog(min, max float64, n int, base float64) (*UniformLog, error) {
	if !(min > 0) {
		return nil, binningErrorf("UniformLog", ErrInvalidLogarithmicEdge, "min=%v", min)
	}
	if !(min < max) || math.IsInf(max, 0) {
		return nil, binningErrorf("UniformLog", ErrBinningNotIncreasing, "min=%v, max=%v", min, max)
	}
	if base != naturalBase && (!(base > 0) || base == 1 || math.IsInf(base, 0)) {
		return nil, binningErrorf("UniformLog", ErrInvalidLogarithmicBase, "base=%v", base)
	}
	if n < 1 {
		return nil, binningErrorf("UniformLog", ErrNoBins, "n=%d", n)
	}

	u := &UniformLog{min: min, max: max, n: n, base: base}
	u.logMin = u.log(min)
	u.step = (u.log(max) - u.logMin) / float64(n)
	if !(u.step > 0) {
		return nil, binningErrorf("UniformLog", ErrBinningNotIncreasing, "log step of %d bins over [%v, %v) underflows", n, min, max)
	}

	u.edges = make([]float64, n+1)
	u.edges[0], u.edges[n] = min, max
	for i := 1; i < n; i++ {
		u.edges[i] = u.exp(u.logMin + float64(i)*u.step)
	}
	if err := checkEdges("UniformLog", u.edges); err != nil {
		return nil, err
	}

	return u, nil
}

// LogSpace builds n bins over [min, max) equally spaced in natural-log space.
//
// Errors: ErrInvalidLogarithmicEdge, ErrBinningNotIncreasing, ErrNoBins.
// Complexity: build O(n), Find O(1).
func LogSpace(min, max float64, n int, label string, opts ...Option) (*Binning, error) {
	return logSpace(min, max, n, naturalBase, label, opts...)
}

// Log10Space is LogSpace with base-10 spacing.
func Log10Space(min, max float64, n int, label string, opts ...Option) (*Binning, error) {
	return logSpace(min, max, n, 10, label, opts...)
}

// LogSpaceBase is LogSpace with an arbitrary base (finite, > 0, != 1).
// Errors additionally include ErrInvalidLogarithmicBase.
func LogSpaceBase(min, max float64, n int, base float64, label string, opts ...Option) (*Binning, error) {
	if base == naturalBase {
		return nil, binningErrorf("LogSpaceBase", ErrInvalidLogarithmicBase, "base=%v", base)
	}

	return logSpace(min, max, n, base, label, opts...)
}

func logSpace(min, max float64, n int, base float64, label string, opts ...Option) (*Binning, error) {
	s, err := NewUniformLog(min, max, n, base)
	if err != nil {
		return nil, err
	}

	return New(s, []string{label}, opts...)
}

func (*UniformLog) sealed() {}

// Kind returns KindUniformLog.
func (*UniformLog) Kind() Kind { return KindUniformLog }

// Dims returns 1.
func (*UniformLog) Dims() int { return 1 }

// Len returns the number of bins.
func (u *UniformLog) Len() int { return u.n }

// Base returns the logarithm base, or math.E for the natural logarithm.
func (u *UniformLog) Base() float64 {
	if u.base == naturalBase {
		return math.E
	}

	return u.base
}

// Boxes returns the n one-axis boxes in index order.
func (u *UniformLog) Boxes() []extent.Box {
	out := make([]extent.Box, u.n)
	for i := range out {
		out[i] = extent.Box{{Min: u.edges[i], Max: u.edges[i+1]}}
	}

	return out
}

// Classify maps point[0] to its bin. Coordinates <= 0 are malformed.
// The result is monotonically non-decreasing in point[0].
func (u *UniformLog) Classify(point []float64) (Index, error) {
	if err := checkPoint(KindUniformLog, point, 1); err != nil {
		return NPos, err
	}
	x := point[0]
	if x <= 0 {
		return NPos, malformedf(KindUniformLog, ErrNonPositiveCoordinate, "x=%v", x)
	}
	if x < u.min || x >= u.max {
		return NPos, nil
	}
	return locate(u.edges, int(math.Floor((u.log(x)-u.logMin)/u.step)), x), nil
}

func (u *UniformLog) log(v float64) float64 {
	switch u.base {
	case naturalBase:
		return math.Log(v)
	case 10:
		return math.Log10(v)
	case 2:
		return math.Log2(v)
	default:
		return math.Log(v) / math.Log(u.base)
	}
}

func (u *UniformLog) exp(v float64) float64 {
	switch u.base {
	case naturalBase:
		return math.Exp(v)
	case 10:
		return math.Pow(10, v)
	case 2:
		return math.Exp2(v)
	default:
		return math.Exp(v * math.Log(u.base))
	}
}
