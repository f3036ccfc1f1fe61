package stream

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription is a cancellable handle to one active publisher-subscriber
// link. Cancel is idempotent: repeated calls, and calls after the
// subscription completed naturally, have no effect. Cancellation is not a
// completion — a cancelled subscriber receives no terminal signal from the
// cancel itself.
type Subscription interface {
	// ID returns the subscription's unique identifier.
	ID() string
	Cancel()
}

type token struct {
	id        string
	cancelled atomic.Bool
	onCancel  func()
}

// newToken returns a token that runs onCancel exactly once, on the first
// Cancel call. onCancel may be nil for subscriptions with nothing to tear
// down (already-terminated synchronous streams).
func newToken(onCancel func()) *token {
	return &token{id: uuid.NewString(), onCancel: onCancel}
}

func (t *token) ID() string { return t.id }

func (t *token) Cancel() {
	if !t.cancelled.CompareAndSwap(false, true) {
		return
	}
	if t.onCancel != nil {
		t.onCancel()
	}
}

// gate guards deliveries to a downstream subscriber. It serializes OnValue
// and OnCompletion calls and enforces the terminal contract: once a
// completion was delivered or the gate was closed by cancellation, every
// further delivery is dropped. An emission already holding the lock when
// Close is called completes; no emission starts afterwards.
type gate[T any] struct {
	mu   sync.Mutex
	done atomic.Bool
	down Subscriber[T]
}

func newGate[T any](down Subscriber[T]) *gate[T] {
	return &gate[T]{down: down}
}

// Value forwards v downstream. Reports whether the value was delivered.
func (g *gate[T]) Value(v T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done.Load() {
		return false
	}
	g.down.OnValue(v)
	return true
}

// Completion delivers the terminal signal. Only the first call wins;
// reports whether this call delivered it.
func (g *gate[T]) Completion(c Completion) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.done.CompareAndSwap(false, true) {
		return false
	}
	g.down.OnCompletion(c)
	return true
}

// Close shuts the gate without delivering a completion (cancellation
// path). Reports whether this call closed it. Close does not take the
// delivery lock, so a subscriber may cancel from within its own OnValue.
func (g *gate[T]) Close() bool {
	return g.done.CompareAndSwap(false, true)
}

// Done reports whether the gate is terminal (completed or closed).
func (g *gate[T]) Done() bool { return g.done.Load() }

// upstreamRef holds an operator's upstream subscription. The upstream
// token only exists once Subscribe returns, but a synchronous upstream may
// trigger a cancel (transform failure, first-failure-wins) during that
// very call; the ref remembers the cancel and applies it on set.
type upstreamRef struct {
	mu        sync.Mutex
	sub       Subscription
	cancelled bool
}

func (r *upstreamRef) set(s Subscription) {
	r.mu.Lock()
	r.sub = s
	cancelled := r.cancelled
	r.mu.Unlock()
	if cancelled {
		s.Cancel()
	}
}

func (r *upstreamRef) cancel() {
	r.mu.Lock()
	s := r.sub
	r.cancelled = true
	r.mu.Unlock()
	if s != nil {
		s.Cancel()
	}
}
