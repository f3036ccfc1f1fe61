package stream

import (
	"context"
	"sync"
)

// Sink subscribes onValue and onCompletion to the publisher. Either
// function may be nil. The returned token cancels the subscription.
func Sink[T any](p Publisher[T], onValue func(T), onCompletion func(Completion)) Subscription {
	return p.Subscribe(On(onValue, onCompletion))
}

// Collect subscribes to the publisher and blocks until it terminates or
// the context is cancelled, returning all values received so far. A failed
// completion is returned as the error; context cancellation cancels the
// subscription and returns ctx.Err().
func Collect[T any](ctx context.Context, p Publisher[T]) ([]T, error) {
	var (
		mu  sync.Mutex
		out []T
	)
	done := make(chan Completion, 1)

	sub := p.Subscribe(On(func(v T) {
		mu.Lock()
		out = append(out, v)
		mu.Unlock()
	}, func(c Completion) {
		done <- c
	}))

	select {
	case c := <-done:
		mu.Lock()
		defer mu.Unlock()
		if c.Failed() {
			return out, c.Err()
		}
		return out, nil
	case <-ctx.Done():
		sub.Cancel()
		mu.Lock()
		defer mu.Unlock()
		return out, ctx.Err()
	}
}

// Drain subscribes fn to the publisher and blocks until the stream
// terminates or the context is cancelled.
func Drain[T any](ctx context.Context, p Publisher[T], fn func(T)) error {
	done := make(chan Completion, 1)

	sub := p.Subscribe(On(fn, func(c Completion) {
		done <- c
	}))

	select {
	case c := <-done:
		return c.Err()
	case <-ctx.Done():
		sub.Cancel()
		return ctx.Err()
	}
}
