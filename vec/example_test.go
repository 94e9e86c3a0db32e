// SPDX-License-Identifier: MIT

package vec_test

import (
	"errors"
	"fmt"

	"github.com/TypedLambda/graphmath/vec"
)

func ExampleVec3_Cross() {
	x := vec.New3(1, 0, 0)
	y := vec.New3(0, 1, 0)
	fmt.Println(x.Cross(y))
	// Output: [0, 0, 1]
}

func ExampleVec3_Normalize() {
	n, err := vec.New3(0, 3, 4).Normalize()
	fmt.Println(n, err)

	_, err = vec.Zero3().Normalize()
	fmt.Println(errors.Is(err, vec.ErrZeroLength))
	// Output:
	// [0, 0.6, 0.8] <nil>
	// true
}

func ExampleVec3FromSlice() {
	v, _ := vec.Vec3FromSlice([]float64{1, 2, 3, 4})
	fmt.Println(v)

	_, err := vec.Vec3FromSlice([]float64{1, 2})
	fmt.Println(err)
	// Output:
	// [1, 2, 3]
	// Vec3FromSlice: want 3, got 2: vec: not enough components
}
