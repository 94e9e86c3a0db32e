// SPDX-License-Identifier: MIT
// Package mat_test contains test helpers
//
// Purpose:
//   • Deterministic random fixtures (fixed seeds, well-conditioned matrices).
//   • A gonum bridge used as an independent oracle for products and inverses.

package mat_test

import (
	"math/rand"

	"github.com/google/go-cmp/cmp/cmpopts"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

// approx compares float leaves (also inside Mat/Vec arrays) within 1e-9.
var approx = cmpopts.EquateApprox(1e-12, 1e-9)

// randMat33 returns entries in [-1, 1) plus 4·I, which keeps the matrix
// diagonally dominant and far from singular.
func randMat33(r *rand.Rand) mat.Mat33 {
	var m mat.Mat33
	for i := range m {
		m[i] = r.Float64()*2 - 1
	}
	m[0] += 4
	m[4] += 4
	m[8] += 4

	return m
}

func randMat44(r *rand.Rand) mat.Mat44 {
	var m mat.Mat44
	for i := range m {
		m[i] = r.Float64()*2 - 1
	}
	for i := 0; i < 4; i++ {
		m[5*i] += 4
	}

	return m
}

func randVec3(r *rand.Rand) vec.Vec3 {
	return vec.New3(r.Float64()*10-5, r.Float64()*10-5, r.Float64()*10-5)
}

func randVec4(r *rand.Rand) vec.Vec4 {
	return vec.New4(r.Float64()*10-5, r.Float64()*10-5, r.Float64()*10-5, r.Float64()*10-5)
}

// dense copies a row-major n×n buffer into a gonum Dense.
func dense(n int, data []float64) *gmat.Dense {
	return gmat.NewDense(n, n, append([]float64(nil), data...))
}

// rawData returns the row-major buffer of a gonum n×n result.
func rawData(d *gmat.Dense) []float64 {
	raw := d.RawMatrix()
	out := make([]float64, 0, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols]...)
	}

	return out
}
