// SPDX-License-Identifier: MIT

package extent

import (
	"fmt"
	"math"
)

// Extent is the half-open interval [Min, Max) on a single axis.
// A well-formed Extent always has Min < Max; use NewExtent or Validate
// when the bounds come from untrusted input.
type Extent struct {
	Min float64
	Max float64
}

// NewExtent builds [min, max) and rejects min >= max.
// NaN bounds fail the same check since every comparison with NaN is false.
// Complexity: O(1).
func NewExtent(min, max float64) (Extent, error) {
	e := Extent{Min: min, Max: max}
	if err := e.Validate(); err != nil {
		return Extent{}, err
	}

	return e, nil
}

// Validate reports ErrBinningNotIncreasing unless Min < Max.
func (e Extent) Validate() error {
	if !(e.Min < e.Max) {
		return extentErrorf("Validate", ErrBinningNotIncreasing, "[%v, %v)", e.Min, e.Max)
	}

	return nil
}

// Contains reports whether Min <= x < Max.
func (e Extent) Contains(x float64) bool {
	return e.Min <= x && x < e.Max
}

// Width returns Max - Min.
func (e Extent) Width() float64 {
	return e.Max - e.Min
}

// Center returns the midpoint of the interval. Half-infinite intervals have
// no midpoint; their center is the finite point of the interval nearest the
// finite edge (Min for [a, +Inf), the float below Max for [-Inf, b)), and
// [-Inf, +Inf) centers on 0. The result always lies inside the interval.
func (e Extent) Center() float64 {
	lo, hi := math.IsInf(e.Min, -1), math.IsInf(e.Max, 1)
	switch {
	case lo && hi:
		return 0
	case lo:
		return math.Nextafter(e.Max, math.Inf(-1))
	case hi:
		return e.Min
	}
	if w := e.Max - e.Min; !math.IsInf(w, 0) {
		return e.Min + 0.5*w
	}

	return 0.5*e.Min + 0.5*e.Max
}

// Equal reports exact equality of both bounds.
func (e Extent) Equal(o Extent) bool {
	return e.Min == o.Min && e.Max == o.Max
}

// Less orders Extents by Min, then by Max.
func (e Extent) Less(o Extent) bool {
	if e.Min != o.Min {
		return e.Min < o.Min
	}

	return e.Max < o.Max
}

// Overlaps reports whether the intersection of e and o has strictly
// positive width. Touching at a boundary is not an overlap.
func (e Extent) Overlaps(o Extent) bool {
	return math.Min(e.Max, o.Max)-math.Max(e.Min, o.Min) > 0
}

// String renders the interval as "[min, max)".
func (e Extent) String() string {
	return fmt.Sprintf("[%g, %g)", e.Min, e.Max)
}

// compare is the three-way form of Less.
func (e Extent) compare(o Extent) int {
	switch {
	case e.Equal(o):
		return 0
	case e.Less(o):
		return -1
	default:
		return 1
	}
}
