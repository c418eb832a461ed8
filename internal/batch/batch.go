// Package batch runs per-item work over a slice with a bounded number of
// concurrent workers.
package batch

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item with at most max(1, concurrency) calls in
// flight at once. Results keep the index alignment of items regardless of
// completion order. Workers claim indices from a shared atomic cursor, so
// no item is processed twice or skipped. The first error cancels the
// remaining work and fails the whole batch.
func Map[T, R any](ctx context.Context, items []T, concurrency int, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	workers := concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	g, ctx := errgroup.WithContext(ctx)

	var cursor atomic.Int64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1)) - 1
				if i >= len(items) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := fn(ctx, items[i])
				if err != nil {
					return err
				}
				results[i] = r
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
