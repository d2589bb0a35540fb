package binning_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/extent"
)

// ExampleLinSpace shows half-open bins and the NPos sentinel.
func ExampleLinSpace() {
	b, err := binning.LinSpace(0, 10, 5, "x")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range []float64{0, 4.5, 9.999, 10} {
		i, _ := b.Find1(x)
		fmt.Printf("x=%v -> %d\n", x, i)
	}
	// Output:
	// x=0 -> 0
	// x=4.5 -> 2
	// x=9.999 -> 4
	// x=10 -> -1
}

// ExampleLinSpaceND shows the tensor-grid index encoding (axis 0 fastest).
func ExampleLinSpaceND() {
	b, _ := binning.LinSpaceND([]binning.Axis{{Min: 0, Max: 1, N: 2}, {Min: 0, Max: 1, N: 2}}, []string{"x", "y"})
	i, _ := b.Find([]float64{0.25, 0.75})
	j, _ := b.Find([]float64{0.75, 0.25})
	fmt.Println(b.Len(), i, j)
	// Output:
	// 4 2 1
}

// ExampleFromExtents classifies into an irregular layout with a gap.
func ExampleFromExtents() {
	b, err := binning.FromExtents([]extent.Box{
		{{Min: 0, Max: 1}, {Min: 0, Max: 2}},
		{{Min: 1, Max: 3}, {Min: 0, Max: 1}},
	}, []string{"x", "y"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range [][]float64{{0.5, 1.5}, {2, 0.5}, {2, 1.5}} {
		i, _ := b.Find(p)
		fmt.Println(p, "->", i)
	}
	// Output:
	// [0.5 1.5] -> 0
	// [2 0.5] -> 1
	// [2 1.5] -> -1
}

// ExampleProduct combines two 1-D binnings.
func ExampleProduct() {
	x, _ := binning.LinSpace(0, 1, 2, "x")
	y, _ := binning.LinSpace(0, 4, 2, "y")
	p, _ := binning.Product([]*binning.Binning{x, y})
	fmt.Print(p)
	// Output:
	// product binning, labels: ["x" "y"]
	//   0: [[0, 0.5), [0, 2)]
	//   1: [[0.5, 1), [0, 2)]
	//   2: [[0, 0.5), [2, 4)]
	//   3: [[0.5, 1), [2, 4)]
}

// ExampleWithMode contrasts Strict and Permissive handling of NaN.
func ExampleWithMode() {
	strict, _ := binning.LinSpace(0, 1, 2, "x")
	_, err := strict.Find1(math.NaN())
	fmt.Println(errors.Is(err, binning.ErrMalformedPoint))

	lax, _ := binning.LinSpace(0, 1, 2, "x", binning.WithMode(binning.Permissive))
	i, err := lax.Find1(math.NaN())
	fmt.Println(i, err)
	// Output:
	// true
	// -1 <nil>
}
