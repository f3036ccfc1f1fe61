package stream

import (
	"sync"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
)

// Cell is a mutex-guarded mutable value holder, the write target of an
// assign sink.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewCell returns a cell holding the initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{v: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Set replaces the current value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Assign writes every value received from the publisher into the cell and
// ignores the finished signal.
//
// Assign requires a failure-free upstream. The language cannot enforce
// that at the type level, so a failed completion reaching the sink is
// treated as a contract violation: the cell keeps its last value and the
// failure is reported through the kit logger with code ASSIGN_FAILED.
func Assign[T any](p Publisher[T], cell *Cell[T]) Subscription {
	return p.Subscribe(On(cell.Set, func(c Completion) {
		if !c.Failed() {
			return
		}
		err := errors.AssignFailed(c.Err())
		logger.Error("stream: assign received a failure from its upstream",
			logger.ErrorFields("assign", err))
	}))
}
