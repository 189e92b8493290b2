// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. The documentation pipeline uses it to run
// the note and coding stages side by side; results keep input order.
//
// The helper manages goroutines, bounded concurrency via a semaphore channel,
// context cancellation and panic containment.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot,
// that goroutine records ctx.Err() and does not call fn. Goroutines that
// have already acquired a slot run to completion (fn is responsible for
// checking ctx internally if it supports cancellation).
//
// A panic in fn is recovered and recorded as that item's Err; other items
// are unaffected.
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately.
//
// maxWorkers below 1 is treated as 1. If maxWorkers >= len(items), all items
// run concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			// Context-aware semaphore acquisition.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			results[idx] = call(ctx, fn, it)
		}(i, item)
	}

	wg.Wait()
	return results
}

// call runs fn and converts a panic into an error result.
func call[T, R any](ctx context.Context, fn func(context.Context, T) (R, error), item T) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: recovered panic: %v", r)}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
