// SPDX-License-Identifier: MIT

package binspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/histbin/binning"
)

// Kind names.
const (
	KindLinear  = "linear"
	KindLog     = "log"
	KindLog10   = "log10"
	KindTensor  = "tensor"
	KindEdges   = "edges"
	KindBoxes   = "boxes"
	KindProduct = "product"
)

// Spec is a top-level declaration: an optional mode plus one Decl.
type Spec struct {
	Mode string `yaml:"mode,omitempty"`
	Decl `yaml:",inline"`
}

// Decl declares one binning. Which fields apply depends on Kind.
type Decl struct {
	Kind     string        `yaml:"kind"`
	Label    string        `yaml:"label,omitempty"`
	Labels   []string      `yaml:"labels,omitempty"`
	Min      float64       `yaml:"min,omitempty"`
	Max      float64       `yaml:"max,omitempty"`
	N        int           `yaml:"n,omitempty"`
	Base     float64       `yaml:"base,omitempty"`
	Edges    []float64     `yaml:"edges,omitempty"`
	Axes     []AxisDecl    `yaml:"axes,omitempty"`
	Boxes    [][][]float64 `yaml:"boxes,omitempty"`
	Operands []Decl        `yaml:"operands,omitempty"`
}

// AxisDecl is one axis of a tensor declaration.
type AxisDecl struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	N     int     `yaml:"n"`
	Label string  `yaml:"label,omitempty"`
}

// ParseMode maps "strict" (or "") and "permissive" to a binning.Mode,
// ignoring case and surrounding space.
func ParseMode(s string) (binning.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return binning.Strict, nil
	case "permissive":
		return binning.Permissive, nil
	default:
		return binning.Strict, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ParseSpec decodes and validates one declaration from data.
func ParseSpec(data []byte) (*Spec, error) {
	return DecodeSpec(bytes.NewReader(data))
}

// DecodeSpec decodes and validates one declaration from r.
// The caller owns r; DecodeSpec reads until the first YAML document ends.
func DecodeSpec(r io.Reader) (*Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Spec
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Parse decodes data and builds the declared Binning. opts are applied after
// the declared mode, so they take precedence.
func Parse(data []byte, opts ...binning.Option) (*binning.Binning, error) {
	s, err := ParseSpec(data)
	if err != nil {
		return nil, err
	}

	return s.Build(opts...)
}

// Decode reads one declaration from r and builds the declared Binning.
func Decode(r io.Reader, opts ...binning.Option) (*binning.Binning, error) {
	s, err := DecodeSpec(r)
	if err != nil {
		return nil, err
	}

	return s.Build(opts...)
}

// Encode writes s as YAML to w.
func Encode(w io.Writer, s *Spec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("binspec: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks the mode and the structure of every declaration.
func (s *Spec) Validate() error {
	if _, err := ParseMode(s.Mode); err != nil {
		return err
	}

	return s.Decl.validate("")
}

// Build validates s and runs the declared builders. The top-level mode and
// opts configure the returned Binning; product operands are built with
// defaults since Product consults only its own Mode.
func (s *Spec) Build(opts ...binning.Option) (*binning.Binning, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(s.Mode)
	all := append([]binning.Option{binning.WithMode(mode)}, opts...)

	return s.Decl.build("", all)
}

func (d *Decl) validate(path string) error {
	switch d.Kind {
	case KindLinear, KindLog, KindLog10:
		if d.N == 0 {
			return specErrorf(path, ErrInvalidSpec, "%s requires n", d.Kind)
		}
		if d.Kind != KindLog && d.Base != 0 {
			return specErrorf(path, ErrInvalidSpec, "base applies to kind log only")
		}
	case KindTensor:
		if len(d.Axes) == 0 {
			return specErrorf(path, ErrInvalidSpec, "tensor requires axes")
		}
	case KindEdges:
		if len(d.Edges) == 0 {
			return specErrorf(path, ErrInvalidSpec, "edges requires edges")
		}
	case KindBoxes:
		if len(d.Boxes) == 0 {
			return specErrorf(path, ErrInvalidSpec, "boxes requires boxes")
		}
		for i, b := range d.Boxes {
			for a, e := range b {
				if len(e) != 2 {
					return specErrorf(path, ErrInvalidSpec, "boxes[%d][%d] has %d bounds, want [min, max]", i, a, len(e))
				}
			}
		}
	case KindProduct:
		if len(d.Operands) == 0 {
			return specErrorf(path, ErrInvalidSpec, "product requires operands")
		}
		for i := range d.Operands {
			if err := d.Operands[i].validate(fmt.Sprintf("%soperands[%d]", prefix(path), i)); err != nil {
				return err
			}
		}
	case "":
		return specErrorf(path, ErrInvalidSpec, "missing kind")
	default:
		return specErrorf(path, ErrUnknownKind, "%q", d.Kind)
	}

	return nil
}

func prefix(path string) string {
	if path == "" {
		return ""
	}

	return path + "."
}
