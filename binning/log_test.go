package binning_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/histbin/binning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogSpace_Errors verifies validation order and sentinels.
func TestLogSpace_Errors(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		n        int
		err      error
	}{
		{"ZeroMin", 0, 10, 3, binning.ErrInvalidLogarithmicEdge},
		{"NegativeMin", -1, 10, 3, binning.ErrInvalidLogarithmicEdge},
		{"NegativeMinAndReversed", -1, -10, 3, binning.ErrInvalidLogarithmicEdge},
		{"Reversed", 10, 1, 3, binning.ErrBinningNotIncreasing},
		{"Equal", 5, 5, 3, binning.ErrBinningNotIncreasing},
		{"ZeroBins", 1, 10, 0, binning.ErrNoBins},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := binning.LogSpace(tc.min, tc.max, tc.n, "E")
			assert.ErrorIs(t, err, tc.err)
			_, err = binning.Log10Space(tc.min, tc.max, tc.n, "E")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLogSpaceBase_InvalidBase rejects bases without a usable logarithm.
func TestLogSpaceBase_InvalidBase(t *testing.T) {
	for _, base := range []float64{0, 1, -2, math.NaN(), math.Inf(1)} {
		_, err := binning.LogSpaceBase(1, 10, 3, base, "E")
		assert.ErrorIs(t, err, binning.ErrInvalidLogarithmicBase, "base=%v", base)
	}
}

// TestLog10Space_Decades checks decade edges and classification away from them.
func TestLog10Space_Decades(t *testing.T) {
	b, err := binning.Log10Space(1, 1000, 3, "E [MeV]")
	require.NoError(t, err)
	assert.Equal(t, binning.KindUniformLog, b.Kind())

	edges := []float64{1, 10, 100, 1000}
	boxes := b.Boxes()
	for i, bx := range boxes {
		assert.InDelta(t, edges[i], bx[0].Min, 1e-9*edges[i])
		assert.InDelta(t, edges[i+1], bx[0].Max, 1e-9*edges[i+1])
	}
	assert.Equal(t, 1.0, boxes[0][0].Min, "outer edges are exact")
	assert.Equal(t, 1000.0, boxes[2][0].Max, "outer edges are exact")

	cases := []struct {
		x    float64
		want binning.Index
	}{
		{1, 0}, {5, 0}, {50, 1}, {500, 2},
		{math.Nextafter(1000, 0), 2}, {1000, binning.NPos}, {0.5, binning.NPos},
	}
	for _, tc := range cases {
		got, err := b.Find1(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "x=%v", tc.x)
	}
}

// TestLogSpaceBase_Two checks base-2 spacing.
func TestLogSpaceBase_Two(t *testing.T) {
	b, err := binning.LogSpaceBase(1, 8, 3, 2, "E")
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5, 3, 6}, b.BinCenters1D())
	got, err := b.Find1(3)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	s, ok := b.Strategy().(*binning.UniformLog)
	require.True(t, ok)
	assert.Equal(t, 2.0, s.Base())
}

// TestLogSpace_Natural pins the outer edges and uses base e.
func TestLogSpace_Natural(t *testing.T) {
	b, err := binning.LogSpace(0.5, 20, 4, "E")
	require.NoError(t, err)

	boxes := b.Boxes()
	assert.Equal(t, 0.5, boxes[0][0].Min)
	assert.Equal(t, 20.0, boxes[3][0].Max)
	assert.InDelta(t, 0.5*math.Pow(40, 0.25), boxes[0][0].Max, 1e-12)

	s := b.Strategy().(*binning.UniformLog)
	assert.Equal(t, math.E, s.Base())
}

// TestLogSpace_NonPositiveIsMalformed covers the log-specific rejection.
func TestLogSpace_NonPositiveIsMalformed(t *testing.T) {
	b, err := binning.LogSpace(1, 10, 3, "E")
	require.NoError(t, err)

	for _, x := range []float64{0, -1, -1e-3} {
		got, err := b.Find1(x)
		assert.ErrorIs(t, err, binning.ErrMalformedPoint, "x=%v", x)
		assert.ErrorIs(t, err, binning.ErrNonPositiveCoordinate, "x=%v", x)
		assert.Equal(t, binning.NPos, got)
	}
}

// TestLogSpace_Monotonic sweeps [min, max) and checks the index never decreases.
func TestLogSpace_Monotonic(t *testing.T) {
	const min, max, n, steps = 1e-3, 1e4, 37, 20000
	b, err := binning.LogSpace(min, max, n, "E")
	require.NoError(t, err)

	prev := 0
	for i := 0; i < steps; i++ {
		x := min + (max-min)*float64(i)/steps
		got, err := b.Find1(x)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "x=%v", x)
		require.Less(t, got, n)
		prev = got
	}
	assert.Equal(t, n-1, prev)
}
