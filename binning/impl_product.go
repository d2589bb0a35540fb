// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"math"

	"github.com/katalvlaran/histbin/extent"
)

// Cartesian composes independent strategies over consecutive blocks of axes.
// Operand k consults point[offset_k : offset_k+Dims_k]; local indices are
// combined with the tensor-grid encoding, operand 0 varying fastest.
type Cartesian struct {
	ops     []Strategy
	offsets []int
	strides []int
	dims    int
	total   int
}

// NewCartesian validates operands and precomputes offsets and strides.
//
// Errors: ErrNoBins (no operands, or an operand without bins),
// ErrNilBinning (nil operand), ErrTooManyBins.
// Complexity: O(m).
func NewCartesian(ops ...Strategy) (*Cartesian, error) {
	if len(ops) == 0 {
		return nil, binningErrorf("Cartesian", ErrNoBins, "no operands")
	}
	c := &Cartesian{
		ops:     make([]Strategy, len(ops)),
		offsets: make([]int, len(ops)),
		strides: make([]int, len(ops)),
		total:   1,
	}
	for k, op := range ops {
		if op == nil {
			return nil, binningErrorf("Cartesian", ErrNilBinning, "operand %d", k)
		}
		n := op.Len()
		if n < 1 {
			return nil, binningErrorf("Cartesian", ErrNoBins, "operand %d", k)
		}
		if c.total > math.MaxInt/n {
			return nil, binningErrorf("Cartesian", ErrTooManyBins, "operand %d", k)
		}
		c.ops[k] = op
		c.offsets[k] = c.dims
		c.strides[k] = c.total
		c.dims += op.Dims()
		c.total *= n
	}

	return c, nil
}

// Product combines binnings over disjoint, consecutive coordinate blocks into
// one joint Binning: dims add up, bin counts multiply, labels concatenate.
// Bin boxes are the Cartesian product of the operand boxes with operand 0
// varying fastest, matching the classification index.
//
// Each operand's own boxes are checked for overlaps (ErrBinningHasOverlaps);
// the projection of the product onto an operand's axis block is exactly that
// operand's box list. Strategies are sealed and built only by validating
// constructors, so the check fails only if an operand's boxes were corrupted
// after construction. The product uses its own Mode for malformed
// sub-points; operand Modes and Reporters are not consulted.
//
// Errors: ErrNoBins, ErrNilBinning, ErrTooManyBins, ErrBinningHasOverlaps.
// Complexity: build O(N·d) plus Σ operand overlap checks, Find Σ operand Find costs.
func Product(binnings []*Binning, opts ...Option) (*Binning, error) {
	if len(binnings) == 0 {
		return nil, binningErrorf("Product", ErrNoBins, "no operands")
	}
	ops := make([]Strategy, len(binnings))
	var labels []string
	for k, b := range binnings {
		if b == nil {
			return nil, binningErrorf("Product", ErrNilBinning, "operand %d", k)
		}
		ops[k] = b.strategy
		labels = append(labels, b.labels...)
	}
	c, err := NewCartesian(ops...)
	if err != nil {
		return nil, err
	}
	for k, b := range binnings {
		overlaps, err := extent.HasOverlaps(b.boxes)
		if err != nil {
			return nil, binningErrorf("Product", err, "operand %d", k)
		}
		if overlaps {
			return nil, binningErrorf("Product", ErrBinningHasOverlaps, "operand %d", k)
		}
	}

	return New(c, labels, opts...)
}

func (*Cartesian) sealed() {}

// Kind returns KindProduct.
func (*Cartesian) Kind() Kind { return KindProduct }

// Dims returns Σ operand dims.
func (c *Cartesian) Dims() int { return c.dims }

// Len returns Π operand bin counts.
func (c *Cartesian) Len() int { return c.total }

// Operands returns the operand strategies in axis order.
func (c *Cartesian) Operands() []Strategy {
	out := make([]Strategy, len(c.ops))
	copy(out, c.ops)

	return out
}

// Boxes returns the product boxes in index order (operand 0 fastest).
func (c *Cartesian) Boxes() []extent.Box {
	opBoxes := make([][]extent.Box, len(c.ops))
	for k, op := range c.ops {
		opBoxes[k] = op.Boxes()
	}
	out := make([]extent.Box, c.total)
	for bin := range out {
		b := make(extent.Box, 0, c.dims)
		rem := bin
		for k := range c.ops {
			n := len(opBoxes[k])
			b = append(b, opBoxes[k][rem%n]...)
			rem /= n
		}
		out[bin] = b
	}

	return out
}

// Classify slices point per operand and combines the local indices.
// NPos from any operand yields NPos; operand errors are returned with the
// operand position attached.
func (c *Cartesian) Classify(point []float64) (Index, error) {
	if len(point) < c.dims {
		return NPos, malformedf(KindProduct, ErrMismatchedAxisCount, "point has %d coordinates, binning has %d axes", len(point), c.dims)
	}
	idx := 0
	for k, op := range c.ops {
		off := c.offsets[k]
		local, err := op.Classify(point[off : off+op.Dims()])
		if err != nil {
			return NPos, fmt.Errorf("product operand %d: %w", k, err)
		}
		if local == NPos {
			return NPos, nil
		}
		idx += local * c.strides[k]
	}

	return idx, nil
}
