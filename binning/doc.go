// SPDX-License-Identifier: MIT

// Package binning classifies numeric points into the bins of a declared,
// non-overlapping partition of coordinate space.
//
// What:
//
//   - Binning is an immutable value: ordered boxes, one label per axis and a
//     lookup Strategy. Find returns a bin index or NPos.
//   - Builders:
//     – LinSpace:       n equal-width 1-D bins.
//     – LogSpace, Log10Space, LogSpaceBase: n bins equal-width in log space.
//     – LinSpaceND:     full tensor grid of uniform axes.
//     – Contiguous:     1-D bins from strictly increasing edges.
//     – FromExtents:    arbitrary validated boxes (gaps allowed).
//     – Product:        Cartesian product of independent binnings.
//     – New:            wrap any Strategy built with NewUniformLinear, NewUniformLog,
//     NewTensorGrid, NewSortedEdges, NewBoxSet or NewCartesian.
//   - Geometry for downstream normalization: BinSizes, BinCenters, BinCenters1D.
//   - FindAll fans classification out over a bounded worker group.
//
// Index encoding:
//
//	Tensor grids and products number bins with axis (operand) 0 varying
//	fastest: index = Σ local_i · stride_i, stride_0 = 1,
//	stride_i = Π_{j<i} N_j. Box i of the Binning is always the region that
//	classifies to i.
//
// Malformed points:
//
//	A point shorter than Dims(), a NaN/±Inf/subnormal coordinate (exact 0 is
//	fine), or x <= 0 on a logarithmic axis is malformed. The policy is chosen
//	per Binning with WithMode:
//	  Strict (default) — Find returns an error wrapping ErrMalformedPoint.
//	  Permissive       — Find returns NPos, nil and calls the Reporter set
//	                     with WithReporter (see package report).
//	ErrCatastrophicBinningFailure is always returned.
//
// Concurrency:
//
//	Strategies hold no mutable state; Find and FindAll may be called from any
//	number of goroutines on a shared Binning. Builders are one-shot and not
//	meant to be shared mid-construction.
//
// Complexity:
//
//   - LinSpace / LogSpace Find: O(1).
//   - LinSpaceND Find:          O(d).
//   - Contiguous Find:          O(log k).
//   - FromExtents Find:         O(log N + d·s), s = candidates scanned per axis.
//   - Product Find:             Σ operand Find.
package binning
