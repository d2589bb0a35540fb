// SPDX-License-Identifier: MIT

package binning

import "math"

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// isBinnable reports whether x is zero or a normal finite number.
func isBinnable(x float64) bool {
	if x == 0 {
		return true
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return math.Abs(x) >= minNormal
}

// checkPoint validates the first dims coordinates of point.
// Complexity: O(dims).
func checkPoint(kind Kind, point []float64, dims int) error {
	if len(point) < dims {
		return malformedf(kind, ErrMismatchedAxisCount, "point has %d coordinates, binning has %d axes", len(point), dims)
	}
	for i := 0; i < dims; i++ {
		if !isBinnable(point[i]) {
			return malformedf(kind, ErrAbnormalCoordinate, "axis %d: %v", i, point[i])
		}
	}

	return nil
}
