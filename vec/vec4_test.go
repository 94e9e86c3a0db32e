// SPDX-License-Identifier: MIT

package vec_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/TypedLambda/graphmath/vec"
)

func TestVec4_Basics(t *testing.T) {
	t.Parallel()

	a := vec.New4(1, 2, 3, 4)
	b := vec.New4(-1, 0, 1, 2)
	require.Equal(t, vec.Vec4{}, vec.Zero4())
	require.Equal(t, vec.New4(0, 2, 4, 6), a.Add(b))
	require.Equal(t, vec.New4(2, 2, 2, 2), a.Sub(b))
	require.Equal(t, vec.New4(0.5, 1, 1.5, 2), a.Scale(0.5))
	require.Equal(t, vec.New4(-1, 0, 3, 8), a.ScaleVec(b))
	require.Equal(t, 10.0, a.Dot(b))
	require.Equal(t, 30.0, a.LengthSquared())
	require.Equal(t, 2.0, b.LengthManhattan())
	require.Equal(t, 4.0, b.LengthL1())
	require.Equal(t, vec.New3(1, 2, 3), a.XYZ())
	require.Equal(t, 4.0, a.W())
	require.Equal(t, "[1, 2, 3, 4]", a.String())
}

func TestVec4_FromSlice(t *testing.T) {
	t.Parallel()

	v, err := vec.Vec4FromSlice([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, vec.New4(1, 2, 3, 4), v)

	_, err = vec.Vec4FromSlice([]float64{1, 2, 3})
	require.ErrorIs(t, err, vec.ErrArity)
}

func TestVec4_Properties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	rv := func() vec.Vec4 {
		return vec.New4(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
	}
	for i := 0; i < 200; i++ {
		a, b, c := rv(), rv(), rv()
		require.Equal(t, a.Dot(b), b.Dot(a))
		require.True(t, cmp.Equal(a.Add(b).Add(c), a.Add(b.Add(c)), approx))
		require.Equal(t, a.Dot(a), a.LengthSquared())
		n, err := a.Normalize()
		require.NoError(t, err)
		require.InDelta(t, 1.0, n.Length(), 1e-9)
	}
}

func TestVec4_ZeroLengthAndPerspectiveDivide(t *testing.T) {
	t.Parallel()

	_, err := vec.Zero4().Normalize()
	require.ErrorIs(t, err, vec.ErrZeroLength)
	require.True(t, vec.Zero4().NormalizeOrZero().IsZero())

	p, err := vec.New4(2, 4, 6, 2).PerspectiveDivide()
	require.NoError(t, err)
	require.Equal(t, vec.New3(1, 2, 3), p)

	_, err = vec.New4(1, 2, 3, 0).PerspectiveDivide()
	require.ErrorIs(t, err, vec.ErrZeroLength)
}

func TestVec4_NormalizeExtremeMagnitudes(t *testing.T) {
	t.Parallel()

	n, err := vec.New4(0, 0, 0, 1e-200).Normalize()
	require.NoError(t, err)
	require.Equal(t, vec.New4(0, 0, 0, 1), n)

	n, err = vec.New4(1e250, 1e250, 1e250, 1e250).Normalize()
	require.NoError(t, err)
	require.True(t, n.Compare(vec.New4(0.5, 0.5, 0.5, 0.5), 1e-12))
	require.InEpsilon(t, 2e250, vec.New4(1e250, 1e250, 1e250, 1e250).Length(), 1e-12)
}

func TestVec4_LerpCompareRound(t *testing.T) {
	t.Parallel()

	a := vec.New4(0, 0, 0, 0)
	b := vec.New4(4, 8, 12, 16)
	require.Equal(t, vec.New4(1, 2, 3, 4), a.Lerp(b, 0.25))
	require.True(t, a.Compare(vec.New4(0, 0, 0, 1e-10), 1e-9))
	require.False(t, a.Compare(b, 1))

	got, err := vec.New4(1.005, 2.5, -2.5, 0).Round(0)
	require.NoError(t, err)
	require.Equal(t, vec.New4(1, 3, -3, 0), got)
}
