package stream

// Just returns a publisher that emits exactly one value and finishes,
// synchronously within Subscribe.
func Just[T any](v T) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		t := newToken(func() { g.Close() })
		g.Value(v)
		g.Completion(Finished())
		return t
	})
}

// FromSlice returns a publisher that emits each value in order and
// finishes, synchronously within Subscribe.
func FromSlice[T any](items []T) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		t := newToken(func() { g.Close() })
		for _, v := range items {
			if !g.Value(v) {
				break
			}
		}
		g.Completion(Finished())
		return t
	})
}

// Empty returns a publisher that finishes immediately without values.
func Empty[T any]() Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		t := newToken(func() { g.Close() })
		g.Completion(Finished())
		return t
	})
}

// Fail returns a publisher that fails immediately with err.
func Fail[T any](err error) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		t := newToken(func() { g.Close() })
		g.Completion(Failed(err))
		return t
	})
}

// FromChannel returns a publisher that emits every value received from ch
// on a background goroutine. Closing the channel finishes the stream;
// cancelling the subscription stops the pump. Each subscription runs its
// own pump, so a channel should back at most one subscription unless
// splitting values between them is intended.
func FromChannel[T any](ch <-chan T) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		stop := make(chan struct{})
		t := newToken(func() {
			g.Close()
			close(stop)
		})

		go func() {
			for {
				select {
				case <-stop:
					return
				case v, ok := <-ch:
					if !ok {
						g.Completion(Finished())
						return
					}
					g.Value(v)
				}
			}
		}()

		return t
	})
}
