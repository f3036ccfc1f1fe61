package stream

import "sync"

// SubscriptionSet owns a group of subscription tokens and cancels them
// together. Each token added to the set is cancelled by the set at most
// once: CancelAll empties the set as it cancels. The zero teardown pattern
// is deferring Close at the owner's scope entry so every subscription
// stored during the scope is released on exit.
type SubscriptionSet struct {
	mu     sync.Mutex
	subs   map[string]Subscription
	closed bool
}

// NewSubscriptionSet returns an empty set.
func NewSubscriptionSet() *SubscriptionSet {
	return &SubscriptionSet{subs: make(map[string]Subscription)}
}

// Add inserts a token into the set. Adding to a closed set cancels the
// token immediately, since the owning scope already tore down.
func (s *SubscriptionSet) Add(sub Subscription) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub.Cancel()
		return
	}
	s.subs[sub.ID()] = sub
	s.mu.Unlock()
}

// Remove takes a token out of the set without cancelling it.
func (s *SubscriptionSet) Remove(sub Subscription) {
	s.mu.Lock()
	delete(s.subs, sub.ID())
	s.mu.Unlock()
}

// Len returns the number of tokens currently held.
func (s *SubscriptionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// CancelAll cancels every currently-held token exactly once and empties
// the set. Calling it on an empty set is a no-op. The set remains usable
// afterwards.
func (s *SubscriptionSet) CancelAll() {
	s.mu.Lock()
	snapshot := s.subs
	s.subs = make(map[string]Subscription)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.Cancel()
	}
}

// Close cancels all held tokens and marks the set closed, so later Add
// calls cancel their token immediately. Close always returns nil; it
// implements io.Closer so a set can sit in any deferred-cleanup path.
// Safe to call multiple times.
func (s *SubscriptionSet) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.CancelAll()
	return nil
}
