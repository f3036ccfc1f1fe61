package stream

import (
	"sync"

	"github.com/kbukum/streamkit/errors"
)

// Subject is a manually driven publisher. Values sent with Send are
// broadcast to every current subscriber; Finish and Fail deliver the
// terminal signal and detach all subscribers. A subscriber arriving after
// the terminal receives it immediately.
//
// Delivery happens on the calling goroutine. Concurrent Send calls are
// safe but their relative order is whatever the scheduler produces.
type Subject[T any] struct {
	mu       sync.Mutex
	subs     map[string]*gate[T]
	terminal *Completion
}

// NewSubject returns an empty, unterminated subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[string]*gate[T])}
}

// Publisher returns the subject's publisher face.
func (s *Subject[T]) Publisher() Publisher[T] {
	return New(s.subscribe)
}

func (s *Subject[T]) subscribe(sub Subscriber[T]) Subscription {
	g := newGate(sub)

	s.mu.Lock()
	if s.terminal != nil {
		term := *s.terminal
		s.mu.Unlock()
		t := newToken(func() { g.Close() })
		g.Completion(term)
		return t
	}

	t := newToken(nil)
	t.onCancel = func() {
		g.Close()
		s.mu.Lock()
		delete(s.subs, t.id)
		s.mu.Unlock()
	}
	s.subs[t.id] = g
	s.mu.Unlock()
	return t
}

// Send broadcasts v to all current subscribers. Returns a
// SUBJECT_TERMINATED error if the subject already completed.
func (s *Subject[T]) Send(v T) error {
	gates, err := s.snapshot("send")
	if err != nil {
		return err
	}
	for _, g := range gates {
		g.Value(v)
	}
	return nil
}

// Finish completes the subject and delivers finished to all subscribers.
func (s *Subject[T]) Finish() error {
	return s.terminate("finish", Finished())
}

// Fail completes the subject and delivers the failure to all subscribers.
func (s *Subject[T]) Fail(err error) error {
	return s.terminate("fail", Failed(err))
}

// Terminated reports whether the subject already delivered its terminal.
func (s *Subject[T]) Terminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminal != nil
}

// SubscriberCount returns the number of attached subscribers.
func (s *Subject[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// snapshot copies the current gates so delivery happens without holding
// the subject lock; a subscriber may then cancel or resubscribe from
// within its own callback.
func (s *Subject[T]) snapshot(op string) ([]*gate[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal != nil {
		return nil, errors.SubjectTerminated(op)
	}
	gates := make([]*gate[T], 0, len(s.subs))
	for _, g := range s.subs {
		gates = append(gates, g)
	}
	return gates, nil
}

func (s *Subject[T]) terminate(op string, c Completion) error {
	s.mu.Lock()
	if s.terminal != nil {
		s.mu.Unlock()
		return errors.SubjectTerminated(op)
	}
	s.terminal = &c
	gates := make([]*gate[T], 0, len(s.subs))
	for _, g := range s.subs {
		gates = append(gates, g)
	}
	s.subs = make(map[string]*gate[T])
	s.mu.Unlock()

	for _, g := range gates {
		g.Completion(c)
	}
	return nil
}
