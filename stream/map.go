package stream

import "github.com/kbukum/streamkit/errors"

// Map transforms each upstream value using fn. A non-nil error from fn
// fails the stream with a TRANSFORM_FAILED completion wrapping it, cancels
// the upstream, and stops further delivery. Completion from the upstream
// is forwarded unchanged.
func Map[I, O any](p Publisher[I], fn func(I) (O, error)) Publisher[O] {
	return New(func(sub Subscriber[O]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}

		adapter := On(func(v I) {
			if g.Done() {
				return
			}
			out, err := fn(v)
			if err != nil {
				g.Completion(Failed(errors.TransformFailed(err)))
				up.cancel()
				return
			}
			g.Value(out)
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
