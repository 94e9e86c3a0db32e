// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TypedLambda/graphmath/batch"
	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

func randVec3s(n int, seed int64) []vec.Vec3 {
	r := rand.New(rand.NewSource(seed))
	out := make([]vec.Vec3, n)
	for i := range out {
		out[i] = vec.New3(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
	}

	return out
}

func randVec4s(n int, seed int64) []vec.Vec4 {
	r := rand.New(rand.NewSource(seed))
	out := make([]vec.Vec4, n)
	for i := range out {
		out[i] = vec.New4(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), 1)
	}

	return out
}

// modes covers the inline path and the chunked errgroup path.
var modes = []struct {
	name string
	opts []batch.Option
}{
	{"sequential", nil},
	{"parallel", []batch.Option{batch.WithSequentialBelow(0), batch.WithChunkSize(7), batch.WithWorkers(3)}},
}

func TestTransform3_MatchesScalar(t *testing.T) {
	t.Parallel()

	m := mat.Rotate33(0.7).Multiply(mat.Translate33(1, -2))
	in := randVec3s(1000, 1)
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			left, err := batch.TransformLeft3(context.Background(), m, in, mode.opts...)
			require.NoError(t, err)
			right, err := batch.Transform3(context.Background(), m, in, mode.opts...)
			require.NoError(t, err)
			require.Len(t, left, len(in))
			for i, v := range in {
				require.Equal(t, m.ApplyLeft(v), left[i])
				require.Equal(t, m.Apply(v), right[i])
			}
		})
	}
}

func TestTransform4_MatchesScalar(t *testing.T) {
	t.Parallel()

	m, err := mat.Rotate44(1.1, vec.New3(1, 2, 3))
	require.NoError(t, err)
	m = m.Multiply(mat.Translate44(4, 5, 6))
	in := randVec4s(777, 2)
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			left, err := batch.TransformLeft4(context.Background(), m, in, mode.opts...)
			require.NoError(t, err)
			right, err := batch.Transform4(context.Background(), m, in, mode.opts...)
			require.NoError(t, err)
			pts := make([]vec.Vec3, len(in))
			for i, v := range in {
				pts[i] = v.XYZ()
			}
			moved, err := batch.TransformPoints44(context.Background(), m, pts, mode.opts...)
			require.NoError(t, err)
			for i, v := range in {
				require.Equal(t, m.ApplyLeft(v), left[i])
				require.Equal(t, m.Apply(v), right[i])
				require.Equal(t, m.TransformPoint(pts[i]), moved[i])
			}
		})
	}
}

func TestNormalize3(t *testing.T) {
	t.Parallel()

	in := randVec3s(500, 3)
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			out, err := batch.Normalize3(context.Background(), in, mode.opts...)
			require.NoError(t, err)
			for _, v := range out {
				require.InDelta(t, 1.0, v.Length(), 1e-9)
			}

			extreme := []vec.Vec3{vec.New3(1e200, 0, 0), vec.New3(3e-170, 4e-170, 0)}
			out, err = batch.Normalize3(context.Background(), extreme, mode.opts...)
			require.NoError(t, err)
			require.True(t, out[0].Compare(vec.New3(1, 0, 0), 1e-12))
			require.True(t, out[1].Compare(vec.New3(0.6, 0.8, 0), 1e-12))

			bad := append([]vec.Vec3(nil), in...)
			bad[123] = vec.Zero3()
			out, err = batch.Normalize3(context.Background(), bad, mode.opts...)
			require.ErrorIs(t, err, vec.ErrZeroLength)
			require.ErrorContains(t, err, "element 123")
			require.Nil(t, out)
		})
	}
}

func TestRun_InputNotModified(t *testing.T) {
	t.Parallel()

	in := randVec3s(64, 4)
	snapshot := append([]vec.Vec3(nil), in...)
	_, err := batch.TransformLeft3(context.Background(), mat.UniformScale33(math.Pi), in, modes[1].opts...)
	require.NoError(t, err)
	require.Equal(t, snapshot, in)
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, mode := range modes {
		out, err := batch.Transform3(context.Background(), mat.Identity33(), nil, mode.opts...)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, mode := range modes {
		_, err := batch.TransformLeft3(ctx, mat.Identity33(), randVec3s(100, 5), mode.opts...)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestRun_NilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is the case under test
	_, err := batch.Transform3(nil, mat.Identity33(), randVec3s(3, 6))
	require.ErrorIs(t, err, batch.ErrNilContext)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	o := batch.NewOptions()
	require.GreaterOrEqual(t, o.Workers(), 1)
	require.Equal(t, batch.DefaultChunkSize, o.ChunkSize())
	require.Equal(t, batch.DefaultSequentialBelow, o.SequentialBelow())

	o = batch.NewOptions(batch.WithWorkers(2), batch.WithChunkSize(10), batch.WithSequentialBelow(0))
	require.Equal(t, 2, o.Workers())
	require.Equal(t, 10, o.ChunkSize())
	require.Equal(t, 0, o.SequentialBelow())

	require.Panics(t, func() { batch.WithWorkers(0) })
	require.Panics(t, func() { batch.WithChunkSize(0) })
	require.Panics(t, func() { batch.WithSequentialBelow(-1) })
}
