package stream

import "sync"

// Merge combines the given upstreams into one stream, forwarding every
// value immediately in arrival order with no buffering. The merged stream
// finishes only after all upstreams finished; the first failure from any
// upstream is forwarded immediately and the remaining upstreams are
// cancelled. Merging zero publishers finishes immediately.
func Merge[T any](pubs ...Publisher[T]) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)

		if len(pubs) == 0 {
			t := newToken(func() { g.Close() })
			g.Completion(Finished())
			return t
		}

		refs := make([]*upstreamRef, len(pubs))
		for i := range refs {
			refs[i] = &upstreamRef{}
		}

		var (
			mu        sync.Mutex
			remaining = len(pubs)
		)

		for i, p := range pubs {
			i := i
			adapter := On(func(v T) {
				g.Value(v)
			}, func(c Completion) {
				if c.Failed() {
					g.Completion(c)
					for j, r := range refs {
						if j != i {
							r.cancel()
						}
					}
					return
				}
				mu.Lock()
				remaining--
				last := remaining == 0
				mu.Unlock()
				if last {
					g.Completion(Finished())
				}
			})
			refs[i].set(p.Subscribe(adapter))
		}

		return newToken(func() {
			g.Close()
			for _, r := range refs {
				r.cancel()
			}
		})
	})
}
