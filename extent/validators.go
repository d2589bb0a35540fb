// SPDX-License-Identifier: MIT
// Package: histbin/extent
//
// validators.go — duplicate and overlap detection over box lists.
//
// Contract:
//   • Inputs are never mutated; every helper works on index permutations.
//   • Results are deterministic and independent of input permutation
//     (except Unique, which preserves first-seen order by definition).

package extent

import "sort"

// SameDims verifies that every box has the same, non-zero dimensionality
// and returns it. An empty list yields (0, nil).
// Complexity: O(N).
func SameDims(boxes []Box) (int, error) {
	if len(boxes) == 0 {
		return 0, nil
	}
	d := len(boxes[0])
	for i, b := range boxes {
		if len(b) != d || len(b) == 0 {
			return 0, extentErrorf("SameDims", ErrMismatchedAxisCount, "box %d has %d axes, box 0 has %d", i, len(b), d)
		}
	}

	return d, nil
}

// Unique removes exact duplicates, keeping the first occurrence of each box
// and preserving input order. Callers detect duplicates by comparing lengths.
// Complexity: O(d·N log N) time, O(N) extra space.
func Unique(boxes []Box) []Box {
	if len(boxes) == 0 {
		return nil
	}
	order := sortedOrder(boxes, compareAny)

	// Within each run of equal boxes the stable sort leaves the earliest
	// input index first; everything after it is a duplicate.
	dup := make([]bool, len(boxes))
	for k := 1; k < len(order); k++ {
		if compareAny(boxes[order[k-1]], boxes[order[k]]) == 0 {
			dup[order[k]] = true
		}
	}

	out := make([]Box, 0, len(boxes))
	for i, b := range boxes {
		if !dup[i] {
			out = append(out, b)
		}
	}

	return out
}

// Overlap reports whether a and b intersect with positive volume: every
// axis pair must overlap with strictly positive width. Boxes that only share
// a face, edge or corner do not overlap. Boxes of different dimensionality
// never overlap.
// Complexity: O(d).
func Overlap(a, b Box) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for i := range a {
		if !a[i].Overlaps(b[i]) {
			return false
		}
	}

	return true
}

// HasOverlaps reports whether any two boxes overlap. When axes are given the
// boxes are first projected onto those axes and deduplicated (ProjectUnique),
// so boxes that agree on the projection do not count against each other; this
// is how one operand's axis block of a product is checked.
//
// Implementation:
//   - Stage 1: optional projection + deduplication.
//   - Stage 2: sort by axis-0 Min, sweep forward while the next Min is below
//     the current Max; only those pairs can overlap.
//
// Complexity: O(d·N log N + d·K), K = number of pairs sharing an axis-0 span.
// Worst case O(d·N²), identical result to an exhaustive pairwise scan.
func HasOverlaps(boxes []Box, axes ...int) (bool, error) {
	if len(axes) > 0 {
		projected, err := ProjectUnique(boxes, axes)
		if err != nil {
			return false, err
		}
		boxes = projected
	}

	order := make([]int, 0, len(boxes))
	for i, b := range boxes {
		if len(b) > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return boxes[order[i]][0].Min < boxes[order[j]][0].Min
	})

	for i := 0; i < len(order); i++ {
		a := boxes[order[i]]
		for j := i + 1; j < len(order); j++ {
			b := boxes[order[j]]
			if b[0].Min >= a[0].Max {
				break
			}
			if Overlap(a, b) {
				return true, nil
			}
		}
	}

	return false, nil
}

// ProjectUnique projects every box onto axes (in the given order) and
// removes duplicate projections, preserving first-seen order.
// Returns ErrAxisOutOfRange if an axis is negative or beyond a box.
// Complexity: O(|axes|·N log N).
func ProjectUnique(boxes []Box, axes []int) ([]Box, error) {
	projected := make([]Box, len(boxes))
	for i, b := range boxes {
		p := make(Box, len(axes))
		for k, ax := range axes {
			if ax < 0 || ax >= len(b) {
				return nil, extentErrorf("ProjectUnique", ErrAxisOutOfRange, "axis %d, box %d has %d axes", ax, i, len(b))
			}
			p[k] = b[ax]
		}
		projected[i] = p
	}

	return Unique(projected), nil
}

// SortedOrder returns the permutation that stably sorts boxes by the box
// ordering (last axis most significant). All boxes must share one
// dimensionality.
// Complexity: O(d·N log N).
func SortedOrder(boxes []Box) ([]int, error) {
	if _, err := SameDims(boxes); err != nil {
		return nil, err
	}

	return sortedOrder(boxes, Box.compare), nil
}

func sortedOrder(boxes []Box, cmp func(a, b Box) int) []int {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cmp(boxes[order[i]], boxes[order[j]]) < 0
	})

	return order
}
