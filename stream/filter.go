package stream

// Filter forwards a value iff pred returns true for it. Values pass
// through unchanged; completion is forwarded unchanged.
func Filter[T any](p Publisher[T], pred func(T) bool) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}

		adapter := On(func(v T) {
			if g.Done() {
				return
			}
			if pred(v) {
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
