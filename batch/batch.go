// SPDX-License-Identifier: MIT

package batch

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/TypedLambda/graphmath"
	"github.com/TypedLambda/graphmath/mat"
	"github.com/TypedLambda/graphmath/vec"
)

// TransformLeft3 returns m.ApplyLeft(v) for every v (row vectors).
func TransformLeft3(ctx context.Context, m mat.Mat33, vs []vec.Vec3, opts ...Option) ([]vec.Vec3, error) {
	return run(ctx, "TransformLeft3", vs, NewOptions(opts...), func(v vec.Vec3) (vec.Vec3, error) {
		return m.ApplyLeft(v), nil
	})
}

// Transform3 returns m.Apply(v) for every v (column vectors).
func Transform3(ctx context.Context, m mat.Mat33, vs []vec.Vec3, opts ...Option) ([]vec.Vec3, error) {
	return run(ctx, "Transform3", vs, NewOptions(opts...), func(v vec.Vec3) (vec.Vec3, error) {
		return m.Apply(v), nil
	})
}

// TransformLeft4 returns m.ApplyLeft(v) for every v.
func TransformLeft4(ctx context.Context, m mat.Mat44, vs []vec.Vec4, opts ...Option) ([]vec.Vec4, error) {
	return run(ctx, "TransformLeft4", vs, NewOptions(opts...), func(v vec.Vec4) (vec.Vec4, error) {
		return m.ApplyLeft(v), nil
	})
}

// Transform4 returns m.Apply(v) for every v.
func Transform4(ctx context.Context, m mat.Mat44, vs []vec.Vec4, opts ...Option) ([]vec.Vec4, error) {
	return run(ctx, "Transform4", vs, NewOptions(opts...), func(v vec.Vec4) (vec.Vec4, error) {
		return m.Apply(v), nil
	})
}

// TransformPoints44 returns m.TransformPoint(p) for every p.
func TransformPoints44(ctx context.Context, m mat.Mat44, ps []vec.Vec3, opts ...Option) ([]vec.Vec3, error) {
	return run(ctx, "TransformPoints44", ps, NewOptions(opts...), func(p vec.Vec3) (vec.Vec3, error) {
		return m.TransformPoint(p), nil
	})
}

// Normalize3 normalizes every vector. A zero-length element fails the
// whole batch with vec.ErrZeroLength and its index.
func Normalize3(ctx context.Context, vs []vec.Vec3, opts ...Option) ([]vec.Vec3, error) {
	return run(ctx, "Normalize3", vs, NewOptions(opts...), vec.Vec3.Normalize)
}

// run maps fn over in.
//
// Implementation:
//   - Stage 1: reject a nil or already-done context.
//   - Stage 2: below SequentialBelow, map inline in index order.
//   - Stage 3: otherwise lo.Chunk the input and run one errgroup task per
//     chunk, at most Workers at a time; each task writes only its own
//     output window.
//
// Errors:
//   - ErrNilContext, ctx.Err(), or the first element error observed.
func run[T any](ctx context.Context, tag string, in []T, o Options, fn func(T) (T, error)) ([]T, error) {
	if ctx == nil {
		return nil, batchErrorf(tag, ErrNilContext)
	}
	if err := ctx.Err(); err != nil {
		return nil, batchErrorf(tag, err)
	}

	out := make([]T, len(in))
	if len(in) < o.sequentialBelow {
		for i, v := range in {
			r, err := fn(v)
			if err != nil {
				return nil, batchErrorf(tag, elemErrorf(i, err))
			}
			out[i] = r
		}
		return out, nil
	}

	chunks := lo.Chunk(in, o.chunkSize)
	graphmath.Logger().Debug("batch: parallel run",
		"op", tag, "n", len(in), "chunks", len(chunks), "workers", o.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for ci, chunk := range chunks {
		base := ci * o.chunkSize
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for k, v := range chunk {
				r, err := fn(v)
				if err != nil {
					return elemErrorf(base+k, err)
				}
				out[base+k] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, batchErrorf(tag, err)
	}

	return out, nil
}
