// SPDX-License-Identifier: MIT

package mat_test

import (
	"math/rand"
	"testing"

	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

// sinks to defeat dead-code elimination
var (
	sinkM33 mat.Mat33
	sinkM44 mat.Mat44
	sinkV4  vec.Vec4
)

func BenchmarkMat33_Multiply(b *testing.B) {
	b.ReportAllocs()
	r := rand.New(rand.NewSource(1337))
	x, y := randMat33(r), randMat33(r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM33 = x.Multiply(y)
	}
}

func BenchmarkMat44_Multiply(b *testing.B) {
	b.ReportAllocs()
	r := rand.New(rand.NewSource(4242))
	x, y := randMat44(r), randMat44(r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM44 = x.Multiply(y)
	}
}

func BenchmarkMat44_MultiplyTranspose(b *testing.B) {
	b.ReportAllocs()
	r := rand.New(rand.NewSource(11))
	x, y := randMat44(r), randMat44(r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM44 = x.MultiplyTranspose(y)
	}
}

func BenchmarkMat44_Inverse(b *testing.B) {
	b.ReportAllocs()
	r := rand.New(rand.NewSource(22))
	x := randMat44(r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM44, _ = x.Inverse()
	}
}

func BenchmarkMat44_ApplyLeft(b *testing.B) {
	b.ReportAllocs()
	m := mat.Translate44(1, 2, 3)
	v := vec.New4(1, 2, 3, 1)
	for i := 0; i < b.N; i++ {
		sinkV4 = m.ApplyLeft(v)
	}
}
