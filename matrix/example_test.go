// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleMatrix_View shows that a view keeps the data it saw at creation.
func ExampleMatrix_View() {
	d, _ := matrix.FromColumnMajor(2, 3, []float64{0, 1, 2, 3, 4, 5})
	v1, _ := d.View(nil, nil)
	v2, _ := v1.View(nil, matrix.Range(0, 1))

	_ = d.Set(1, 0, -10)

	x1, _ := v1.At(1, 0)
	x2, _ := v2.At(1, 0)
	fmt.Println(x1, x2)
	fmt.Println(v1.StorageScheme(), v2.StorageScheme())

	// Output:
	// 1 1
	// Dense View
}

// ExampleMatrix_Set writes through a view into its parent.
func ExampleMatrix_Set() {
	d, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	row, _ := d.Row(1)

	_ = row.Set(0, 1, 40)
	fmt.Print(d)

	// Output:
	// Dense 2x2
	// [1, 2]
	// [3, 40]
}

// ExampleMul multiplies complex matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]complex128{{1i, 1}})
	b, _ := matrix.FromRows([][]complex128{{1i}, {2}})

	p, _ := matrix.Mul[complex128](a, b)
	v, _ := p.At(0, 0)
	fmt.Println(v)

	// Output:
	// (1+0i)
}
