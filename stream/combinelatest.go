package stream

import "sync"

// Pair holds the latest values of two combined upstreams.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the latest values of three combined upstreams.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// CombineLatest subscribes to both upstreams and emits a Pair of their
// latest values: once after both sides have produced at least one value,
// then again every time either side produces a new one.
//
// The combined stream finishes only after both upstreams finished. If
// either upstream fails, the failure is forwarded immediately and the
// other upstream is cancelled; with near-simultaneous failures the first
// observed wins.
func CombineLatest[A, B any](pa Publisher[A], pb Publisher[B]) Publisher[Pair[A, B]] {
	return New(func(sub Subscriber[Pair[A, B]]) Subscription {
		g := newGate(sub)
		upA, upB := &upstreamRef{}, &upstreamRef{}

		var (
			mu           sync.Mutex
			latestA      A
			latestB      B
			hasA, hasB   bool
			doneA, doneB bool
		)

		subA := On(func(v A) {
			if g.Done() {
				return
			}
			mu.Lock()
			latestA, hasA = v, true
			emit := hasB
			pair := Pair[A, B]{First: latestA, Second: latestB}
			mu.Unlock()
			if emit {
				g.Value(pair)
			}
		}, func(c Completion) {
			if c.Failed() {
				g.Completion(c)
				upB.cancel()
				return
			}
			mu.Lock()
			doneA = true
			finished := doneA && doneB
			mu.Unlock()
			if finished {
				g.Completion(Finished())
			}
		})

		subB := On(func(v B) {
			if g.Done() {
				return
			}
			mu.Lock()
			latestB, hasB = v, true
			emit := hasA
			pair := Pair[A, B]{First: latestA, Second: latestB}
			mu.Unlock()
			if emit {
				g.Value(pair)
			}
		}, func(c Completion) {
			if c.Failed() {
				g.Completion(c)
				upA.cancel()
				return
			}
			mu.Lock()
			doneB = true
			finished := doneA && doneB
			mu.Unlock()
			if finished {
				g.Completion(Finished())
			}
		})

		upA.set(pa.Subscribe(subA))
		upB.set(pb.Subscribe(subB))
		return newToken(func() {
			g.Close()
			upA.cancel()
			upB.cancel()
		})
	})
}

// CombineLatest3 combines three upstreams by nesting CombineLatest, with
// the same emission and completion policy extended to three sides.
func CombineLatest3[A, B, C any](pa Publisher[A], pb Publisher[B], pc Publisher[C]) Publisher[Triple[A, B, C]] {
	inner := CombineLatest(CombineLatest(pa, pb), pc)
	return Map(inner, func(p Pair[Pair[A, B], C]) (Triple[A, B, C], error) {
		return Triple[A, B, C]{First: p.First.First, Second: p.First.Second, Third: p.Second}, nil
	})
}
