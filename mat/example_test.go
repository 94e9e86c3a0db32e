// SPDX-License-Identifier: MIT

package mat_test

import (
	"fmt"
	"math"

	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

// Transforms are built for row vectors: compose left to right and apply
// with ApplyLeft.
func ExampleMat33_ApplyLeft() {
	m := mat.Rotate33(math.Pi / 2).Multiply(mat.Translate33(10, 0))
	p := m.ApplyLeft(vec.New3(1, 0, 1))
	r, _ := p.Round(9)
	fmt.Println(r)
	// Output: [10, 1, 1]
}

func ExampleMat33_At() {
	m := mat.Mat33{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v, _ := m.At(1, 2)
	fmt.Println(v)

	_, err := m.At(3, 0)
	fmt.Println(err)
	// Output:
	// 6
	// Mat33.At(3,0): mat: index out of range
}

func ExampleRotate44() {
	m, _ := mat.Rotate44(math.Pi/2, vec.New3(0, 0, 1))
	r, _ := m.TransformPoint(vec.New3(1, 0, 0)).Round(9)
	fmt.Println(r)
	// Output: [0, 1, 0]
}
