package cli

import (
	"context"
	"fmt"
	"sync"
)

// Future is a value that is resolved asynchronously at a later time.
// Once resolved, the result is cached for every call to [Future.Await].
type Future[T any] struct {
	done    chan struct{}
	resolve sync.Once
	val     T
	err     error
}

// Go runs work on a new goroutine, returning a [Future] for its result.
// A panic in work is recovered and reported as an error.
func Go[T any](ctx context.Context, work func(ctx context.Context) (T, error)) *Future[T] {
	if work == nil {
		panic("nil work function")
	}
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		var (
			val T
			err error
		)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				val, err = zero, fmt.Errorf("panic in async work: %v", r)
			}
			f.set(val, err)
		}()
		val, err = work(ctx)
	}()
	return f
}

func (f *Future[T]) set(val T, err error) {
	f.resolve.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Await blocks until the [Future] is resolved, or the context is done.
// If the context is done first, then the zero value is returned with the context's error.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Await runs work asynchronously and waits for the result.
// This allows a [Handler] to wait on background work, respecting cancellation, before continuing the chain.
func Await[T any](ctx context.Context, work func(ctx context.Context) (T, error)) (T, error) {
	return Go(ctx, work).Await(ctx)
}

// Async creates a [Handler] that runs fn asynchronously, and continues the chain only after fn succeeds.
func Async(fn func(ctx context.Context, s *Session) error) Handler {
	if fn == nil {
		panic("nil async function")
	}
	return func(s *Session, next Next) error {
		_, err := Await(s.Context(), func(ctx context.Context) (struct{}, error) {
			return struct{}{}, fn(ctx, s)
		})
		if err != nil {
			return err
		}
		return next()
	}
}
