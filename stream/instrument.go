package stream

import (
	"context"

	"github.com/kbukum/streamkit/observe"
)

// Instrumented passes the stream through unchanged while recording metrics
// under the given stream name: delivered values, terminal completions by
// kind, and the active subscription count. The active count is balanced
// exactly once per subscription, whether it ends by completion or by
// cancellation.
func Instrumented[T any](p Publisher[T], m *observe.Metrics, name string) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		ctx := context.Background()
		g := newGate(sub)
		up := &upstreamRef{}
		m.RecordSubscribe(ctx, name)

		adapter := On(func(v T) {
			if g.Value(v) {
				m.RecordValue(ctx, name)
			}
		}, func(c Completion) {
			if !g.Completion(c) {
				return
			}
			kind := observe.CompletionFinished
			if c.Failed() {
				kind = observe.CompletionFailed
			}
			m.RecordCompletion(ctx, name, kind)
		})

		up.set(p.Subscribe(adapter))
		return newToken(func() {
			if g.Close() {
				m.RecordCompletion(ctx, name, observe.CompletionCancelled)
			}
			up.cancel()
		})
	})
}
