package synth

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GenerateBatch builds n mazes concurrently. Maze i is FromSeed(seed+i, req),
// each with its own grid and random stream, so the batch is reproducible no
// matter how goroutines are scheduled. The first error cancels the rest.
// Results are ordered by i. A negative n is an ErrInvalidRequest; n == 0
// yields an empty slice.
func GenerateBatch(ctx context.Context, seed int64, n int, req Request, opts ...Option) ([]*Maze, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: batch size cannot be negative (%d)", ErrInvalidRequest, n)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	out := make([]*Maze, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := FromSeed(seed+int64(i), req, opts...)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
