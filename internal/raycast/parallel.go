package raycast

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gridcaster/internal/motion"
)

// CastFrameParallel produces the same hits as CastFrame, splitting the columns
// into contiguous bands cast on up to workers goroutines. workers <= 0 uses
// GOMAXPROCS. The grid and pose are only read, so bands need no locking; each
// band writes its own slice range, which keeps the result in column order.
func CastFrameParallel(ctx context.Context, w, h int, pose motion.Pose, world World, workers int) ([]ColumnHit, error) {
	if w <= 0 || h <= 0 {
		return nil, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > w {
		workers = w
	}
	out := make([]ColumnHit, w)
	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return CastFrameInto(out, w, h, pose, world), nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	band := (w + workers - 1) / workers
	for start := 0; start < w; start += band {
		start := start
		end := min(start+band, w)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := start; x < end; x++ {
				out[x] = CastColumn(x, w, h, pose, world)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
