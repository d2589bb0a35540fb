package binspec_test

import (
	"fmt"

	"github.com/katalvlaran/histbin/binspec"
)

// ExampleParse builds a two-axis product from YAML.
func ExampleParse() {
	b, err := binspec.Parse([]byte(`
kind: product
operands:
  - {kind: linear, min: 0, max: 1, n: 2, label: x}
  - {kind: edges, edges: [0, 1, 10], label: y}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	i, _ := b.Find([]float64{0.75, 5})
	fmt.Println(b.Len(), b.Labels(), i)
	// Output:
	// 4 [x y] 3
}
