// SPDX-License-Identifier: MIT

package binspec

import (
	"fmt"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/extent"
)

// build dispatches on Kind; d must already be validated.
func (d *Decl) build(path string, opts []binning.Option) (*binning.Binning, error) {
	b, err := d.dispatch(path, opts)
	if err != nil {
		return nil, specErrorf(path, err, "build %s", d.Kind)
	}

	return b, nil
}

func (d *Decl) dispatch(path string, opts []binning.Option) (*binning.Binning, error) {
	switch d.Kind {
	case KindLinear:
		return binning.LinSpace(d.Min, d.Max, d.N, d.Label, opts...)
	case KindLog:
		if d.Base != 0 {
			return binning.LogSpaceBase(d.Min, d.Max, d.N, d.Base, d.Label, opts...)
		}
		return binning.LogSpace(d.Min, d.Max, d.N, d.Label, opts...)
	case KindLog10:
		return binning.Log10Space(d.Min, d.Max, d.N, d.Label, opts...)
	case KindTensor:
		axes := make([]binning.Axis, len(d.Axes))
		labels := make([]string, len(d.Axes))
		for i, a := range d.Axes {
			axes[i] = binning.Axis{Min: a.Min, Max: a.Max, N: a.N}
			labels[i] = a.Label
		}
		return binning.LinSpaceND(axes, labels, opts...)
	case KindEdges:
		return binning.Contiguous(d.Edges, d.Label, opts...)
	case KindBoxes:
		boxes := make([]extent.Box, len(d.Boxes))
		for i, decl := range d.Boxes {
			b := make(extent.Box, len(decl))
			for a, e := range decl {
				b[a] = extent.Extent{Min: e[0], Max: e[1]}
			}
			boxes[i] = b
		}
		return binning.FromExtents(boxes, d.Labels, opts...)
	case KindProduct:
		ops := make([]*binning.Binning, len(d.Operands))
		for i := range d.Operands {
			op, err := d.Operands[i].build(fmt.Sprintf("%soperands[%d]", prefix(path), i), nil)
			if err != nil {
				return nil, err
			}
			ops[i] = op
		}
		return binning.Product(ops, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}
