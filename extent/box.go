// SPDX-License-Identifier: MIT

package extent

import "strings"

// Box is the region of one bin: one Extent per axis, axis 0 first.
type Box []Extent

// NewBox copies extents into a Box after validating each of them.
// Complexity: O(d).
func NewBox(extents ...Extent) (Box, error) {
	b := make(Box, len(extents))
	for i, e := range extents {
		if err := e.Validate(); err != nil {
			return nil, extentErrorf("NewBox", err, "axis %d", i)
		}
		b[i] = e
	}

	return b, nil
}

// Dims returns the dimensionality of the box.
func (b Box) Dims() int {
	return len(b)
}

// Validate checks every Extent of the box.
func (b Box) Validate() error {
	for i, e := range b {
		if !(e.Min < e.Max) {
			return extentErrorf("Box.Validate", ErrBinningNotIncreasing, "axis %d: %s", i, e)
		}
	}

	return nil
}

// Clone returns an independent copy of the box.
func (b Box) Clone() Box {
	if b == nil {
		return nil
	}
	out := make(Box, len(b))
	copy(out, b)

	return out
}

// Equal reports whether both boxes have the same dimensionality and
// identical Extents on every axis.
func (b Box) Equal(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Contains reports whether point lies inside the box. Only the first
// Dims() coordinates are consulted; a shorter point is never contained.
func (b Box) Contains(point []float64) bool {
	if len(point) < len(b) {
		return false
	}
	for i, e := range b {
		if !e.Contains(point[i]) {
			return false
		}
	}

	return true
}

// Volume is the product of the per-axis widths.
func (b Box) Volume() float64 {
	v := 1.0
	for _, e := range b {
		v *= e.Width()
	}

	return v
}

// Center returns the per-axis midpoints.
func (b Box) Center() []float64 {
	c := make([]float64, len(b))
	for i, e := range b {
		c[i] = e.Center()
	}

	return c
}

// Compare orders b against o: lexicographically from the last axis down to
// axis 0, each Extent by Min then Max. Returns -1, 0 or +1.
// Boxes of different dimensionality are not comparable.
// Complexity: O(d).
func (b Box) Compare(o Box) (int, error) {
	if len(b) != len(o) {
		return 0, extentErrorf("Box.Compare", ErrMismatchedAxisCount, "%d != %d", len(b), len(o))
	}

	return b.compare(o), nil
}

// Less reports whether b sorts strictly before o (see Compare).
func (b Box) Less(o Box) (bool, error) {
	c, err := b.Compare(o)
	if err != nil {
		return false, err
	}

	return c < 0, nil
}

// compare assumes equal dimensionality.
func (b Box) compare(o Box) int {
	for i := len(b) - 1; i >= 0; i-- {
		if c := b[i].compare(o[i]); c != 0 {
			return c
		}
	}

	return 0
}

// compareAny extends compare to mixed dimensionality by ordering on length
// first. Used where heterogeneous input must still be grouped deterministically.
func compareAny(a, b Box) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return a.compare(b)
}

// String renders the box as "[[a, b), [c, d)]".
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
