package stream

import "sync"

// RemoveDuplicates forwards a value iff it differs from the last forwarded
// value according to equal. The retained value is per-subscription state,
// so every new Subscribe starts fresh.
func RemoveDuplicates[T any](p Publisher[T], equal func(a, b T) bool) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}

		var (
			mu   sync.Mutex
			last T
			seen bool
		)

		adapter := On(func(v T) {
			if g.Done() {
				return
			}
			mu.Lock()
			dup := seen && equal(last, v)
			if !dup {
				last, seen = v, true
			}
			mu.Unlock()
			if !dup {
				g.Value(v)
			}
		}, func(c Completion) {
			g.Completion(c)
		})

		up.set(p.Subscribe(adapter))
		return newToken(func() {
			g.Close()
			up.cancel()
		})
	})
}

// RemoveDuplicatesComparable is RemoveDuplicates with == as the equality
// function.
func RemoveDuplicatesComparable[T comparable](p Publisher[T]) Publisher[T] {
	return RemoveDuplicates(p, func(a, b T) bool { return a == b })
}
