package scheduler

import "time"

// Timer is a handle to a pending callback.
type Timer interface {
	// Stop prevents the callback from firing. Returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Scheduler schedules callbacks to run at a later point without blocking
// the caller.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// AfterFunc runs fn after d has elapsed. The callback runs on an
	// unspecified goroutine.
	AfterFunc(d time.Duration, fn func()) Timer
}

// System returns the wall-clock scheduler backed by the runtime timer heap.
func System() Scheduler { return systemScheduler{} }

type systemScheduler struct{}

func (systemScheduler) Now() time.Time { return time.Now() }

func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (st systemTimer) Stop() bool { return st.t.Stop() }
