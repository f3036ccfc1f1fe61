package testutil

import (
	"sync"
	"time"

	"github.com/kbukum/streamkit/stream"
)

// Recorder is a Subscriber that records everything it receives. Safe for
// concurrent use; Wait blocks until the terminal completion arrives.
type Recorder[T any] struct {
	mu         sync.Mutex
	values     []T
	completion *stream.Completion
	done       chan struct{}
}

// NewRecorder returns an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{done: make(chan struct{})}
}

// OnValue records the value.
func (r *Recorder[T]) OnValue(v T) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

// OnCompletion records the terminal signal and releases Wait.
func (r *Recorder[T]) OnCompletion(c stream.Completion) {
	r.mu.Lock()
	if r.completion == nil {
		r.completion = &c
		close(r.done)
	}
	r.mu.Unlock()
}

// Values returns a copy of the values received so far.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Terminated reports whether a terminal completion arrived.
func (r *Recorder[T]) Terminated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completion != nil
}

// Finished reports whether the stream completed without error.
func (r *Recorder[T]) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completion != nil && !r.completion.Failed()
}

// Failed reports whether the stream completed with an error.
func (r *Recorder[T]) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completion != nil && r.completion.Failed()
}

// Err returns the terminal error, or nil.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completion == nil {
		return nil
	}
	return r.completion.Err()
}

// Wait blocks until the terminal completion arrives or the timeout
// elapses. Reports whether the stream terminated in time.
func (r *Recorder[T]) Wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
