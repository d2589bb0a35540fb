// SPDX-License-Identifier: MIT
// Package: histbin/extent
//
// errors.go — sentinel errors for the extent package.
//
// Callers branch with errors.Is; context is attached at the call site with %w.

package extent

import (
	"errors"
	"fmt"
)

var (
	// ErrBinningNotIncreasing indicates an interval whose lower bound is not
	// strictly below its upper bound (including NaN bounds).
	ErrBinningNotIncreasing = errors.New("extent: min must be strictly less than max")

	// ErrMismatchedAxisCount indicates two boxes (or a box and a point) of
	// different dimensionality were combined.
	ErrMismatchedAxisCount = errors.New("extent: mismatched axis count")

	// ErrAxisOutOfRange indicates a projection axis outside a box's dimensionality.
	ErrAxisOutOfRange = errors.New("extent: axis out of range")
)

// extentErrorf prefixes err with the operation tag, keeping err matchable.
func extentErrorf(tag string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", tag, err, fmt.Sprintf(format, args...))
}
