package stream

import (
	"sync"
	"time"

	"github.com/kbukum/streamkit/scheduler"
)

// Debounce waits for silence of duration d after the last upstream value
// before forwarding it. A value arriving during the quiet period replaces
// the pending one and restarts the timer, so only the latest value in a
// burst is emitted.
//
// When the upstream finishes, a pending value that has not fired yet is
// flushed downstream before the finished signal. When the upstream fails,
// the pending value is dropped and the failure is forwarded at once.
func Debounce[T any](p Publisher[T], d time.Duration, sched scheduler.Scheduler) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}

		var (
			mu      sync.Mutex
			pending T
			has     bool
			timer   scheduler.Timer
			gen     int
		)

		// fire forwards the pending value when the quiet period for
		// generation expect elapsed uninterrupted. The generation check
		// drops callbacks from timers that were superseded or stopped
		// after the callback was already scheduled.
		fire := func(expect int) func() {
			return func() {
				mu.Lock()
				if gen != expect || !has {
					mu.Unlock()
					return
				}
				v := pending
				has = false
				mu.Unlock()
				g.Value(v)
			}
		}

		adapter := On(func(v T) {
			if g.Done() {
				return
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			pending, has = v, true
			gen++
			timer = sched.AfterFunc(d, fire(gen))
			mu.Unlock()
		}, func(c Completion) {
			mu.Lock()
			if timer != nil {
				timer.Stop()
				timer = nil
			}
			gen++
			v, flush := pending, has && !c.Failed()
			has = false
			mu.Unlock()
			if flush {
				g.Value(v)
			}
			g.Completion(c)
		})

		up.set(p.Subscribe(adapter))
		return newToken(func() {
			g.Close()
			mu.Lock()
			if timer != nil {
				timer.Stop()
				timer = nil
			}
			gen++
			has = false
			mu.Unlock()
			up.cancel()
		})
	})
}
