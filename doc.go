// Package histbin maps points in N-dimensional coordinate space to the index
// of the bin that contains them, for filling histograms and projecting
// simulated events onto an analysis binning.
//
// What is a binning?
//
//	An ordered set of non-overlapping, half-open boxes [min, max) per axis,
//	with one label per axis. Find returns the index of the unique box holding
//	a point, or NPos when no box does. Bins need not tile space: gaps are
//	legal, overlaps are not.
//
// Builders and their lookup strategies:
//
//	binning.LinSpace     — equal-width 1-D bins, O(1) closed form
//	binning.LogSpace     — equal-width in log space (natural, 10, any base)
//	binning.LinSpaceND   — tensor grid of linear axes, O(d)
//	binning.Contiguous   — adjoining 1-D bins from sorted edges, O(log k)
//	binning.FromExtents  — arbitrary validated boxes, sorted-range narrowing
//	binning.Product      — Cartesian product of binnings over disjoint axes
//
// Under the hood:
//
//	extent/   — Extent and Box value types, ordering, overlap and uniqueness checks
//	binning/  — Binning, the strategies above, Strict/Permissive modes, FindAll
//	report/   — zap and Prometheus reporters for permissive binnings
//	binspec/  — YAML binning declarations
//	examples/ — runnable demonstrations
//
// Quick start:
//
//	b, err := binning.LinSpace(0, 10, 5, "x")
//	if err != nil { ... }
//	i, err := b.Find1(4.5) // 2
//
// Every Binning is immutable after construction and safe for concurrent
// Find calls.
package histbin
