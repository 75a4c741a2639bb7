// Package fanout runs a function over a slice with bounded concurrency and
// keeps one result per item, in input order. Version listing uses it to
// parse version folders in parallel without letting one unreadable folder
// abort the rest.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most workers calls in flight. Item
// errors are recorded in the matching Result and never stop other items.
//
// Once ctx is done, items that have not started yet get ctx.Err() without
// fn being called. Calls already running are left to observe ctx
// themselves. A workers value below 1 means one worker.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(workers, 1))

	for i, item := range items {
		// Go blocks while the pool is full, so the check sees cancellation
		// that happened while waiting for a slot.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
