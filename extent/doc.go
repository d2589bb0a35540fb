// SPDX-License-Identifier: MIT

// Package extent provides the geometric primitives every binning is made of.
//
// What:
//
//   - Extent is a half-open interval [Min, Max) on one coordinate axis.
//   - Box is an ordered tuple of Extents, one per axis, describing one bin.
//   - Validation helpers detect duplicate and overlapping boxes, optionally
//     projected onto a subset of axes.
//   - Geometry helpers compute per-box volumes (bin sizes) and centroids.
//
// Ordering:
//
//	Boxes are ordered lexicographically from the LAST axis to the FIRST;
//	Extents compare by Min, then by Max. The ordering is only defined for
//	boxes of equal dimensionality (ErrMismatchedAxisCount otherwise).
//
// Complexity:
//
//   - Contains, Width, Overlaps: O(1) per Extent, O(d) per Box.
//   - Unique:                    O(d·N log N).
//   - HasOverlaps:               O(d·N log N + d·K), K = pairs sharing axis-0 span.
//   - Sizes, Centers:            O(d·N).
//
// Errors:
//
//   - ErrBinningNotIncreasing: an Extent with Min >= Max (or NaN bounds).
//   - ErrMismatchedAxisCount:  boxes of different dimensionality were compared.
//   - ErrAxisOutOfRange:       a projection referenced an axis a box does not have.
package extent
