// Package async runs batches of deferred operations with a cap on how
// many are in flight at once. The pool always drains before returning
// and individual failures never stop the rest of the batch.
package async

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Task is a deferred operation executed by Run.
type Task func(ctx context.Context) error

// Run executes every task with at most limit running simultaneously. As
// one task finishes the next queued one starts, so the bound holds at
// all times. The returned error joins every task error, a nil result
// means the whole batch succeeded.
func Run(ctx context.Context, limit int, tasks []Task) error {
	if limit <= 0 {
		limit = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)

	errs := make([]error, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			errs[i] = task(ctx)
			// tasks report through errs, the group never fails fast
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// Map is Run for value-producing operations. Results are positional, a
// failed task leaves the zero value at its index.
func Map[T any](ctx context.Context, limit int, tasks []func(ctx context.Context) (T, error)) ([]T, error) {
	if limit <= 0 {
		limit = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)

	results := make([]T, len(tasks))
	errs := make([]error, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			results[i], errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}
