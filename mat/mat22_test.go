// SPDX-License-Identifier: MIT

package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

func TestMat22(t *testing.T) {
	t.Parallel()

	m := mat.Mat22{1, 2, 3, 4}
	require.True(t, mat.Identity22().IsIdentity())
	require.Equal(t, mat.Mat22{}, mat.Zero22())
	require.Equal(t, mat.Mat22{1, 3, 2, 4}, m.Transpose())
	require.Equal(t, vec.New2(1, 2), m.Row0())
	require.Equal(t, vec.New2(3, 4), m.Row1())
	require.Equal(t, vec.New2(1, 3), m.Col0())
	require.Equal(t, vec.New2(2, 4), m.Col1())
	require.Equal(t, vec.New2(1, 4), m.Diag())
	require.Equal(t, m, mat.Mat22FromRows(m.Row0(), m.Row1()))
	require.Equal(t, 5.0, m.Trace())
	require.Equal(t, -2.0, m.Determinant())

	require.Equal(t, mat.Mat22{7, 10, 15, 22}, m.Multiply(m))
	require.Equal(t, m.Multiply(m.Transpose()), m.MultiplyTranspose(m))
	require.Equal(t, mat.Mat22{2, 4, 6, 8}, m.Add(m))
	require.Equal(t, mat.Zero22(), m.Sub(m))
	require.Equal(t, mat.Mat22{3, 6, 9, 12}, m.Scale(3))

	v := vec.New2(1, 1)
	require.Equal(t, vec.New2(3, 7), m.Apply(v))
	require.Equal(t, vec.New2(4, 6), m.ApplyLeft(v))
	require.Equal(t, vec.New2(4, 6), m.ApplyTranspose(v))
	require.Equal(t, vec.New2(3, 7), m.ApplyLeftTranspose(v))

	got, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, mat.ErrOutOfRange)

	inv, err := m.Inverse()
	require.NoError(t, err)
	require.True(t, m.Multiply(inv).Equal(mat.Identity22(), 1e-12))
	_, err = mat.Mat22{1, 2, 2, 4}.Inverse()
	require.ErrorIs(t, err, mat.ErrSingular)

	s, err := mat.Mat22FromSlice([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, m, s)
	_, err = mat.Mat22FromSlice([]float64{1, 2, 3})
	require.ErrorIs(t, err, mat.ErrArity)

	r, err := mat.Mat22{0.25, 0.75, -0.5, 1}.Round(0)
	require.NoError(t, err)
	require.Equal(t, mat.Mat22{0, 1, -1, 1}, r)

	require.Equal(t, mat.Mat22{2, 0, 0, 3}, mat.Scale22(2, 3))
	require.Equal(t, mat.Mat22{2, 0, 0, 2}, mat.UniformScale22(2))
	require.True(t, mat.Rotate22(math.Pi/2).ApplyLeft(vec.New2(1, 0)).Compare(vec.New2(0, 1), 1e-12))
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
