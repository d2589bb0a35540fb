// SPDX-License-Identifier: MIT

package report

import "github.com/katalvlaran/histbin/binning"

type multi []binning.Reporter

// Multi returns a Reporter that forwards to every non-nil r, in order.
func Multi(rs ...binning.Reporter) binning.Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

func (m multi) ReportMalformed(kind binning.Kind, point []float64, err error) {
	for _, r := range m {
		r.ReportMalformed(kind, point, err)
	}
}
