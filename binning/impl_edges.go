// SPDX-License-Identifier: MIT

package binning

import (
	"math"
	"sort"

	"github.com/katalvlaran/histbin/extent"
)

// SortedEdges is a 1-D partition into adjoining bins [e_i, e_{i+1}).
type SortedEdges struct {
	edges []float64
}

// NewSortedEdges copies edges after checking they are strictly increasing.
// Infinite outer edges are accepted (under/overflow bins); NaN is not.
//
// Errors: ErrNoBins (fewer than two edges), ErrBinningUnsorted.
// Complexity: O(k).
func NewSortedEdges(edges []float64) (*SortedEdges, error) {
	if len(edges) < 2 {
		return nil, binningErrorf("SortedEdges", ErrNoBins, "%d edges", len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) {
			return nil, binningErrorf("SortedEdges", ErrBinningUnsorted, "edge[%d] is NaN", i)
		}
		if i > 0 && !(e > edges[i-1]) {
			return nil, binningErrorf("SortedEdges", ErrBinningUnsorted, "edge[%d]=%v <= edge[%d]=%v", i, e, i-1, edges[i-1])
		}
	}
	cp := make([]float64, len(edges))
	copy(cp, edges)

	return &SortedEdges{edges: cp}, nil
}

// Contiguous builds len(edges)-1 adjoining 1-D bins from strictly increasing edges.
// Classification rejects points outside [edges[0], edges[k]) immediately and
// otherwise binary-searches the edges.
//
// Errors: ErrNoBins, ErrBinningUnsorted.
// Complexity: build O(k), Find O(log k).
func Contiguous(edges []float64, label string, opts ...Option) (*Binning, error) {
	s, err := NewSortedEdges(edges)
	if err != nil {
		return nil, err
	}

	return New(s, []string{label}, opts...)
}

func (*SortedEdges) sealed() {}

// Kind returns KindSortedEdges.
func (*SortedEdges) Kind() Kind { return KindSortedEdges }

// Dims returns 1.
func (*SortedEdges) Dims() int { return 1 }

// Len returns len(edges)-1.
func (s *SortedEdges) Len() int { return len(s.edges) - 1 }

// Edges returns a copy of the bin edges.
func (s *SortedEdges) Edges() []float64 {
	out := make([]float64, len(s.edges))
	copy(out, s.edges)

	return out
}

// Boxes returns the adjoining one-axis boxes in index order.
func (s *SortedEdges) Boxes() []extent.Box {
	out := make([]extent.Box, s.Len())
	for i := range out {
		out[i] = extent.Box{{Min: s.edges[i], Max: s.edges[i+1]}}
	}

	return out
}

// Classify maps point[0] to its bin by binary search.
func (s *SortedEdges) Classify(point []float64) (Index, error) {
	if err := checkPoint(KindSortedEdges, point, 1); err != nil {
		return NPos, err
	}
	x, k := point[0], s.Len()
	if x < s.edges[0] || x >= s.edges[k] {
		return NPos, nil
	}

	// First bin whose upper edge lies above x; edges[i] <= x holds by the range check.
	return sort.Search(k, func(i int) bool { return x < s.edges[i+1] }), nil
}
