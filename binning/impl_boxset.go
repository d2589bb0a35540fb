// SPDX-License-Identifier: MIT
// Package: histbin/binning
//
// impl_boxset.go — arbitrary, validated, possibly irregular box sets.
//
// Lookup is a sorted-range narrowing search. Boxes are stably sorted by the
// box ordering (last axis most significant), so on the last axis the boxes
// with Min <= x form a prefix of the sorted order and, with a running maximum
// of Max, the boxes with Max <= x form another prefix: two binary searches
// bound the candidates. Each axis, from the last down to axis 0, then keeps the
// maximal contiguous runs of candidates whose Extent contains the coordinate.
// Runs, not a single run: irregular layouts can interleave matching and
// non-matching boxes in sort order.

package binning

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/histbin/extent"
)

// span is a half-open range [from, to) over the sorted order.
type span struct{ from, to int }

// BoxSet is a validated set of pairwise non-overlapping boxes.
type BoxSet struct {
	boxes  []extent.Box // original order
	sorted []extent.Box // box ordering
	origin []int        // sorted position -> original index
	dims   int
	lo, hi []float64 // per-axis global bounds
	runMax []float64 // running max of the last axis' Max over sorted
}

// NewBoxSet validates boxes and builds the sorted lookup structure.
//
// Validation order:
//  1. ErrNoBins               — empty input.
//  2. ErrMismatchedAxisCount  — boxes of different (or zero) dimensionality.
//  3. ErrBinningNotIncreasing — an Extent with Min >= Max.
//  4. ErrBinningNotUnique     — exact duplicates.
//  5. ErrBinningHasOverlaps   — positive-volume intersections.
//
// Complexity: O(d·N log N + d·K) with K the pairs sharing an axis-0 span.
func NewBoxSet(boxes []extent.Box) (*BoxSet, error) {
	if len(boxes) == 0 {
		return nil, binningErrorf("BoxSet", ErrNoBins, "empty box list")
	}
	dims, err := extent.SameDims(boxes)
	if err != nil {
		return nil, binningErrorf("BoxSet", err, "%d boxes", len(boxes))
	}
	own := make([]extent.Box, len(boxes))
	for i, b := range boxes {
		if err = b.Validate(); err != nil {
			return nil, binningErrorf("BoxSet", err, "box %d", i)
		}
		own[i] = b.Clone()
	}
	if u := extent.Unique(own); len(u) != len(own) {
		return nil, binningErrorf("BoxSet", ErrBinningNotUnique, "%d unique of %d boxes", len(u), len(own))
	}
	overlaps, err := extent.HasOverlaps(own)
	if err != nil {
		return nil, binningErrorf("BoxSet", err, "overlap check")
	}
	if overlaps {
		return nil, binningErrorf("BoxSet", ErrBinningHasOverlaps, "%d boxes", len(own))
	}

	order, err := extent.SortedOrder(own)
	if err != nil {
		return nil, binningErrorf("BoxSet", err, "sort")
	}
	s := &BoxSet{
		boxes:  own,
		sorted: make([]extent.Box, len(own)),
		origin: order,
		dims:   dims,
		lo:     make([]float64, dims),
		hi:     make([]float64, dims),
		runMax: make([]float64, len(own)),
	}
	for a := 0; a < dims; a++ {
		s.lo[a], s.hi[a] = own[0][a].Min, own[0][a].Max
	}
	top := dims - 1
	for k, i := range order {
		b := own[i]
		s.sorted[k] = b
		for a, e := range b {
			if e.Min < s.lo[a] {
				s.lo[a] = e.Min
			}
			if e.Max > s.hi[a] {
				s.hi[a] = e.Max
			}
		}
		s.runMax[k] = b[top].Max
		if k > 0 && s.runMax[k-1] > s.runMax[k] {
			s.runMax[k] = s.runMax[k-1]
		}
	}

	return s, nil
}

// FromExtents builds a Binning from an arbitrary list of boxes, which need not
// form a grid and may leave gaps. Labels shorter than the dimensionality are
// padded with "". Bin i is boxes[i].
//
// Errors: see NewBoxSet.
// Complexity: build O(d·N log N) for well-structured input, Find O(log N + d·s)
// where s is the number of candidates scanned per axis.
func FromExtents(boxes []extent.Box, labels []string, opts ...Option) (*Binning, error) {
	s, err := NewBoxSet(boxes)
	if err != nil {
		return nil, err
	}

	return New(s, labels, opts...)
}

func (*BoxSet) sealed() {}

// Kind returns KindBoxSet.
func (*BoxSet) Kind() Kind { return KindBoxSet }

// Dims returns the shared dimensionality.
func (s *BoxSet) Dims() int { return s.dims }

// Len returns the number of boxes.
func (s *BoxSet) Len() int { return len(s.boxes) }

// Boxes returns copies of the boxes in their original order.
func (s *BoxSet) Boxes() []extent.Box {
	out := make([]extent.Box, len(s.boxes))
	for i, b := range s.boxes {
		out[i] = b.Clone()
	}

	return out
}

// Classify returns the original index of the unique box containing point,
// NPos when no box does, and ErrCatastrophicBinningFailure if more than one
// box does.
func (s *BoxSet) Classify(point []float64) (Index, error) {
	if err := checkPoint(KindBoxSet, point, s.dims); err != nil {
		return NPos, err
	}
	for a := 0; a < s.dims; a++ {
		if point[a] < s.lo[a] || point[a] >= s.hi[a] {
			return NPos, nil
		}
	}

	top := s.dims - 1
	x := point[top]
	upper := sort.Search(len(s.sorted), func(k int) bool { return s.sorted[k][top].Min > x })
	lower := sort.Search(upper, func(k int) bool { return s.runMax[k] > x })
	if lower >= upper {
		return NPos, nil
	}

	runs := []span{{lower, upper}}
	for a := top; a >= 0; a-- {
		runs = s.narrow(runs, a, point[a])
		if len(runs) == 0 {
			return NPos, nil
		}
	}

	if len(runs) != 1 || runs[0].to-runs[0].from != 1 {
		return NPos, s.catastrophic(point, runs)
	}

	return s.origin[runs[0].from], nil
}

// narrow keeps the maximal runs inside spans whose axis Extent contains x.
func (s *BoxSet) narrow(spans []span, axis int, x float64) []span {
	var out []span
	for _, sp := range spans {
		start := -1
		for k := sp.from; k < sp.to; k++ {
			if s.sorted[k][axis].Contains(x) {
				if start < 0 {
					start = k
				}
				continue
			}
			if start >= 0 {
				out = append(out, span{start, k})
				start = -1
			}
		}
		if start >= 0 {
			out = append(out, span{start, sp.to})
		}
	}

	return out
}

// catastrophic reports every matching box with its original index.
func (s *BoxSet) catastrophic(point []float64, runs []span) error {
	var matches []string
	for _, r := range runs {
		for k := r.from; k < r.to; k++ {
			matches = append(matches, fmt.Sprintf("#%d %s", s.origin[k], s.sorted[k]))
		}
	}

	return binningErrorf("BoxSet.Classify", ErrCatastrophicBinningFailure,
		"point %v matched %d boxes %v", point[:s.dims], len(matches), matches)
}
