// SPDX-License-Identifier: MIT

package binning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/histbin/extent"
)

// Binning is an immutable, ordered set of non-overlapping boxes with one
// label per axis and a Strategy that maps points to box indices.
//
// A Binning is built once by a builder (LinSpace, LogSpace, LinSpaceND,
// Contiguous, FromExtents, Product or New) and is safe for unrestricted
// concurrent reads afterwards.
type Binning struct {
	strategy Strategy
	boxes    []extent.Box
	labels   []string
	cfg      config
}

// New wraps a Strategy into a Binning. Labels shorter than the strategy's
// dimensionality are padded with ""; more labels than axes is an error.
//
// Errors: ErrNilBinning (nil strategy), ErrMismatchedAxisCount.
// Complexity: O(N·d) to materialize the boxes.
func New(s Strategy, labels []string, opts ...Option) (*Binning, error) {
	if s == nil {
		return nil, binningErrorf("New", ErrNilBinning, "nil strategy")
	}
	d := s.Dims()
	if len(labels) > d {
		return nil, binningErrorf("New", ErrMismatchedAxisCount, "%d labels for %d axes", len(labels), d)
	}
	ls := make([]string, d)
	copy(ls, labels)

	return &Binning{
		strategy: s,
		boxes:    s.Boxes(),
		labels:   ls,
		cfg:      newConfig(opts...),
	}, nil
}

// Len returns the number of bins.
func (b *Binning) Len() int { return len(b.boxes) }

// Dims returns the number of axes.
func (b *Binning) Dims() int { return b.strategy.Dims() }

// Kind returns the tag of the underlying Strategy.
func (b *Binning) Kind() Kind { return b.strategy.Kind() }

// Strategy returns the lookup strategy.
func (b *Binning) Strategy() Strategy { return b.strategy }

// Mode returns the malformed-point policy.
func (b *Binning) Mode() Mode { return b.cfg.mode }

// Labels returns a copy of the axis labels.
func (b *Binning) Labels() []string {
	out := make([]string, len(b.labels))
	copy(out, b.labels)

	return out
}

// Box returns a copy of box i, or nil when i is out of range.
func (b *Binning) Box(i Index) extent.Box {
	if i < 0 || i >= len(b.boxes) {
		return nil
	}

	return b.boxes[i].Clone()
}

// Boxes returns a deep copy of all boxes in index order.
func (b *Binning) Boxes() []extent.Box {
	out := make([]extent.Box, len(b.boxes))
	for i, bx := range b.boxes {
		out[i] = bx.Clone()
	}

	return out
}

// Find classifies point. Only the first Dims() coordinates are consulted.
//
// Returns the bin index, or NPos when the point is outside every bin.
// Malformed points (too short, NaN, ±Inf, subnormal; x <= 0 on log axes):
//   - Strict:     (NPos, error wrapping ErrMalformedPoint)
//   - Permissive: (NPos, nil) and the Reporter is notified.
//
// ErrCatastrophicBinningFailure is returned in both modes.
// Find performs no allocation beyond what the Strategy needs and never blocks.
func (b *Binning) Find(point []float64) (Index, error) {
	idx, err := b.strategy.Classify(point)
	if err == nil {
		return idx, nil
	}
	if b.cfg.mode == Permissive && errors.Is(err, ErrMalformedPoint) {
		b.cfg.reporter.ReportMalformed(b.strategy.Kind(), point, err)
		return NPos, nil
	}

	return NPos, err
}

// Find1 classifies a single coordinate.
func (b *Binning) Find1(x float64) (Index, error) {
	return b.Find([]float64{x})
}

// BinSizes returns the volume of every bin (product of axis widths).
func (b *Binning) BinSizes() []float64 {
	return extent.Sizes(b.boxes)
}

// BinCenters returns the centroid of every bin.
func (b *Binning) BinCenters() [][]float64 {
	return extent.Centers(b.boxes)
}

// BinCenters1D returns the axis-0 midpoint of every bin.
func (b *Binning) BinCenters1D() []float64 {
	return extent.Centers1D(b.boxes)
}

// String renders labels and boxes, one bin per line.
func (b *Binning) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s binning, labels: %q\n", b.strategy.Kind(), b.labels)
	for i, bx := range b.boxes {
		fmt.Fprintf(&sb, "  %d: %s\n", i, bx)
	}

	return sb.String()
}
