// SPDX-License-Identifier: MIT
// Package: histbin/binning
//
// errors.go — sentinel errors for the binning package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Construction errors are always returned to the caller, never logged.
//   • Lookup errors on malformed input carry ErrMalformedPoint plus a reason
//     sentinel (ErrMismatchedAxisCount, ErrAbnormalCoordinate,
//     ErrNonPositiveCoordinate); Mode decides whether they reach the caller.
//   • ErrCatastrophicBinningFailure is returned in every Mode.

package binning

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/histbin/extent"
)

var (
	// ErrBinningNotIncreasing indicates an axis or Extent declared with min >= max.
	// It is the same value as extent.ErrBinningNotIncreasing.
	ErrBinningNotIncreasing = extent.ErrBinningNotIncreasing

	// ErrMismatchedAxisCount indicates a point shorter than the binning's
	// dimensionality, or boxes/labels whose axis counts disagree.
	// It is the same value as extent.ErrMismatchedAxisCount.
	ErrMismatchedAxisCount = extent.ErrMismatchedAxisCount

	// ErrInvalidLogarithmicEdge indicates a logarithmic axis with min <= 0.
	ErrInvalidLogarithmicEdge = errors.New("binning: logarithmic axis requires min > 0")

	// ErrInvalidLogarithmicBase indicates a logarithm base that is not finite,
	// positive and different from 1.
	ErrInvalidLogarithmicBase = errors.New("binning: invalid logarithm base")

	// ErrBinningUnsorted indicates edges that are not strictly increasing.
	ErrBinningUnsorted = errors.New("binning: edges are not strictly increasing")

	// ErrBinningNotUnique indicates duplicate boxes handed to FromExtents.
	ErrBinningNotUnique = errors.New("binning: bins are not unique")

	// ErrBinningHasOverlaps indicates boxes that intersect with positive volume.
	ErrBinningHasOverlaps = errors.New("binning: bins overlap")

	// ErrNoBins indicates a construction that would yield zero bins or zero axes.
	ErrNoBins = errors.New("binning: no bins")

	// ErrTooManyBins indicates a grid or product whose bin count overflows int.
	ErrTooManyBins = errors.New("binning: bin count overflows")

	// ErrNilBinning indicates a nil *Binning operand.
	ErrNilBinning = errors.New("binning: nil binning")

	// ErrCatastrophicBinningFailure indicates that a validated box set matched a
	// point more than once. Validation guarantees a partition, so this signals a
	// broken invariant rather than bad input.
	ErrCatastrophicBinningFailure = errors.New("binning: catastrophic binning failure")

	// ErrMalformedPoint indicates a point that cannot be classified: too short,
	// or carrying a coordinate that is not a normal finite number.
	ErrMalformedPoint = errors.New("binning: malformed point")

	// ErrAbnormalCoordinate is the reason attached to ErrMalformedPoint for NaN,
	// ±Inf and subnormal coordinates. Exact zero is always accepted.
	ErrAbnormalCoordinate = errors.New("binning: coordinate is not a normal finite number")

	// ErrNonPositiveCoordinate is the reason attached to ErrMalformedPoint when a
	// logarithmic axis receives x <= 0.
	ErrNonPositiveCoordinate = errors.New("binning: coordinate is not positive")
)

// binningErrorf prefixes err with the method name and a formatted detail,
// keeping err matchable with errors.Is.
func binningErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}

// malformedf builds a lookup error carrying ErrMalformedPoint and reason.
func malformedf(kind Kind, reason error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %w: %s", kind, ErrMalformedPoint, reason, fmt.Sprintf(format, args...))
}
