package stream

import (
	"github.com/kbukum/streamkit/logger"
)

// Tap calls fn as a side-effect for each value, then passes the value
// through unchanged. Use for logging, metrics, or mid-pipeline publishing.
func Tap[T any](p Publisher[T], fn func(T)) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}

		adapter := On(func(v T) {
			if g.Done() {
				return
			}
			fn(v)
			g.Value(v)
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

// Logged passes the stream through unchanged while logging its lifecycle:
// subscribe, each value, the terminal completion, and cancellation. Values
// log at debug level; failures at error level.
func Logged[T any](p Publisher[T], log *logger.Logger, name string) Publisher[T] {
	return New(func(sub Subscriber[T]) Subscription {
		g := newGate(sub)
		up := &upstreamRef{}
		slog := log.WithFields(map[string]interface{}{logger.FieldStream: name})

		adapter := On(func(v T) {
			if g.Done() {
				return
			}
			if g.Value(v) {
				slog.Debug("stream value", map[string]interface{}{"value": v})
			}
		}, func(c Completion) {
			if !g.Completion(c) {
				return
			}
			if c.Failed() {
				slog.Error("stream failed", map[string]interface{}{logger.FieldError: c.Err().Error()})
			} else {
				slog.Debug("stream finished")
			}
		})

		up.set(p.Subscribe(adapter))
		t := newToken(func() {
			if g.Close() {
				slog.Debug("stream cancelled")
			}
			up.cancel()
		})
		slog.Debug("stream subscribed", map[string]interface{}{logger.FieldSubscription: t.ID()})
		return t
	})
}
