package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for each element of items, at most limit at a time.
// It waits for all goroutines to finish and returns the first error
// encountered; the context passed to action is canceled once one fails.
// A limit below one means no limit.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return action(ctx, item)
		})
	}

	return g.Wait()
}

// Map applies mapFn to each element of items in parallel, preserving order.
// The workers parameter controls the number of goroutines.
func Map[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := ForEach(ctx, indexes(len(items)), workers, func(ctx context.Context, i int) error {
		r, err := mapFn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
