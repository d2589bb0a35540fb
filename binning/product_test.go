package binning_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/extent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLin(t *testing.T, min, max float64, n int, label string) *binning.Binning {
	t.Helper()
	b, err := binning.LinSpace(min, max, n, label)
	require.NoError(t, err)

	return b
}

// TestProduct_TwoLinear composes two 1-D binnings.
func TestProduct_TwoLinear(t *testing.T) {
	x := mustLin(t, 0, 1, 2, "x")
	y := mustLin(t, 0, 4, 2, "y")

	p, err := binning.Product([]*binning.Binning{x, y})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 2, p.Dims())
	assert.Equal(t, binning.KindProduct, p.Kind())
	assert.Equal(t, []string{"x", "y"}, p.Labels())

	assert.True(t, p.Box(0).Equal(box(0, 0.5, 0, 2)))
	assert.True(t, p.Box(1).Equal(box(0.5, 1, 0, 2)))
	assert.True(t, p.Box(2).Equal(box(0, 0.5, 2, 4)))
	assert.True(t, p.Box(3).Equal(box(0.5, 1, 2, 4)))

	got, err := p.Find([]float64{0.75, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.True(t, p.Box(got).Contains([]float64{0.75, 2}))
}

// TestProduct_NPosFromEitherOperand yields NPos iff an operand does.
func TestProduct_NPosFromEitherOperand(t *testing.T) {
	x := mustLin(t, 0, 1, 2, "x")
	y, err := binning.Contiguous([]float64{0, 1, 3}, "y")
	require.NoError(t, err)
	p, err := binning.Product([]*binning.Binning{x, y})
	require.NoError(t, err)

	for _, pt := range randomPoints(7, 300, 2, -0.5, 3.5) {
		got, err := p.Find(pt)
		require.NoError(t, err)

		xi, err := x.Find1(pt[0])
		require.NoError(t, err)
		yi, err := y.Find1(pt[1])
		require.NoError(t, err)

		if xi == binning.NPos || yi == binning.NPos {
			assert.Equal(t, binning.NPos, got, "point %v", pt)
			continue
		}
		assert.Equal(t, xi+yi*x.Len(), got, "point %v", pt)
	}
}

// TestProduct_Errors covers empty and nil operand lists.
func TestProduct_Errors(t *testing.T) {
	_, err := binning.Product(nil)
	assert.ErrorIs(t, err, binning.ErrNoBins)

	_, err = binning.Product([]*binning.Binning{mustLin(t, 0, 1, 1, "x"), nil})
	assert.ErrorIs(t, err, binning.ErrNilBinning)

	_, err = binning.NewCartesian()
	assert.ErrorIs(t, err, binning.ErrNoBins)
}

// TestProduct_Nested composes a product with a box set and another product.
func TestProduct_Nested(t *testing.T) {
	xy, err := binning.Product([]*binning.Binning{mustLin(t, 0, 1, 2, "x"), mustLin(t, 0, 1, 2, "y")})
	require.NoError(t, err)
	zw, err := binning.FromExtents([]extent.Box{box(0, 1, 0, 1), box(1, 2, 0, 2)}, []string{"z", "w"})
	require.NoError(t, err)

	p, err := binning.Product([]*binning.Binning{xy, zw})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Dims())
	assert.Equal(t, 8, p.Len())
	assert.Equal(t, []string{"x", "y", "z", "w"}, p.Labels())

	got, err := p.Find([]float64{0.75, 0.25, 1.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, 1+1*4, got)

	got, err = p.Find([]float64{0.75, 0.25, 0.5, 1.5})
	require.NoError(t, err)
	assert.Equal(t, binning.NPos, got, "gap in the box-set operand")

	c := p.Strategy().(*binning.Cartesian)
	assert.Len(t, c.Operands(), 2)
}

// TestProduct_Malformed routes operand errors through the product's Mode.
func TestProduct_Malformed(t *testing.T) {
	x := mustLin(t, 0, 1, 2, "x")
	e, err := binning.LogSpace(1, 100, 2, "e")
	require.NoError(t, err)

	strict, err := binning.Product([]*binning.Binning{x, e})
	require.NoError(t, err)
	_, err = strict.Find([]float64{0.5, -1})
	assert.ErrorIs(t, err, binning.ErrMalformedPoint)
	assert.ErrorIs(t, err, binning.ErrNonPositiveCoordinate)

	_, err = strict.Find([]float64{0.5})
	assert.ErrorIs(t, err, binning.ErrMismatchedAxisCount)

	rep := &recordingReporter{}
	lax, err := binning.Product([]*binning.Binning{x, e},
		binning.WithMode(binning.Permissive), binning.WithReporter(rep))
	require.NoError(t, err)
	got, err := lax.Find([]float64{math.NaN(), 10})
	require.NoError(t, err)
	assert.Equal(t, binning.NPos, got)

	reports := rep.snapshot()
	require.Len(t, reports, 1)
	assert.Equal(t, binning.KindProduct, reports[0].kind)
	assert.ErrorIs(t, reports[0].err, binning.ErrAbnormalCoordinate)
}
