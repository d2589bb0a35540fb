// SPDX-License-Identifier: MIT

package extent

// Sizes returns the volume of every box (product of per-axis widths),
// used downstream to turn bin contents into differential densities.
// Complexity: O(d·N).
func Sizes(boxes []Box) []float64 {
	out := make([]float64, len(boxes))
	for i, b := range boxes {
		out[i] = b.Volume()
	}

	return out
}

// Centers returns the centroid of every box. Half-infinite axes use the
// in-bin point described at Extent.Center.
// Complexity: O(d·N).
func Centers(boxes []Box) [][]float64 {
	out := make([][]float64, len(boxes))
	for i, b := range boxes {
		out[i] = b.Center()
	}

	return out
}

// Centers1D returns the midpoint of axis 0 of every box. Boxes without
// axes yield 0.
func Centers1D(boxes []Box) []float64 {
	out := make([]float64, len(boxes))
	for i, b := range boxes {
		if len(b) > 0 {
			out[i] = b[0].Center()
		}
	}

	return out
}
