package emd

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runEnsemble runs fn once per ensemble member in [0, size), each
// member in its own goroutine of an errgroup.Group whose SetLimit caps
// concurrency at min(GOMAXPROCS, size) running members; members are
// started in index order as slots free up.
//
// On the first error returned by any member, the errgroup's derived
// context is cancelled; members check ctx.Err() at entry and skip
// starting new work, implementing the cooperative first-error
// cancellation policy. runEnsemble returns the first error observed
// (if any); on error, partial output must not be trusted by the caller.
func runEnsemble(ctx context.Context, size int, fn func(ctx context.Context, memberIndex int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > size {
		workers = size
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for member := 0; member < size; member++ {
		member := member
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			return fn(gctx, member)
		})
	}

	return g.Wait()
}
