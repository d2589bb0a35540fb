// SPDX-License-Identifier: MIT

package binning

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of points handed to one worker.
const minChunk = 256

// FindAll classifies points concurrently and returns one Index per point, in
// input order. workers <= 0 uses GOMAXPROCS.
//
// Points are split into contiguous chunks; each worker writes only its own
// slots of the result, so no synchronization beyond the group is needed.
// The first error (a Strict-mode malformed point, a catastrophic failure, or
// ctx cancellation) stops the remaining chunks and is returned with the
// offending point's position.
//
// Complexity: O(P · Find) work spread over the workers.
func (b *Binning) FindAll(ctx context.Context, points [][]float64, workers int) ([]Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Index, len(points))
	if len(points) == 0 {
		return out, nil
	}

	chunk := (len(points) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				idx, err := b.Find(points[i])
				if err != nil {
					return fmt.Errorf("FindAll: point %d: %w", i, err)
				}
				out[i] = idx
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
