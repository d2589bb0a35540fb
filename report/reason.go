// SPDX-License-Identifier: MIT

package report

import (
	"errors"

	"github.com/katalvlaran/histbin/binning"
)

// Reason labels.
const (
	ReasonAxisCount   = "axis_count"
	ReasonNonFinite   = "non_finite"
	ReasonNonPositive = "non_positive"
	ReasonOther       = "other"
)

// Reason maps a malformed-point error to a short, bounded label.
func Reason(err error) string {
	switch {
	case errors.Is(err, binning.ErrMismatchedAxisCount):
		return ReasonAxisCount
	case errors.Is(err, binning.ErrAbnormalCoordinate):
		return ReasonNonFinite
	case errors.Is(err, binning.ErrNonPositiveCoordinate):
		return ReasonNonPositive
	default:
		return ReasonOther
	}
}
