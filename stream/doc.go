// Package stream provides composable, push-based reactive streams.
//
// A Publisher produces zero or more values followed by at most one terminal
// Completion (finished or failed). Subscribing returns a Subscription token
// whose Cancel stops delivery; Cancel is idempotent and safe after natural
// completion. Operators wrap an upstream publisher and return a new one, so
// pipelines compose as plain function calls with no inheritance.
//
// # Sources
//
//   - Just: one value, then finished (synchronous)
//   - FromSlice: each value in order, then finished (synchronous)
//   - Empty, Fail: an immediate terminal
//   - FromChannel: pump a Go channel until it closes
//   - Subject: manually driven multi-subscriber source
//
// # Operators
//
//   - Map: transform each value; a transform error fails the stream
//   - Filter: keep values matching a predicate
//   - RemoveDuplicates: drop values equal to the last forwarded one
//   - Debounce: emit the latest value after a quiet period; a pending
//     value is flushed when the upstream finishes
//   - CombineLatest: pair the latest values of two upstreams
//   - Merge: interleave several upstreams in arrival order
//   - Tap, Logged, Instrumented: side effects, logging, metrics
//
// # Sinks
//
//   - Sink: subscribe with plain functions
//   - Assign: write each value into a Cell
//   - Collect, Drain: block until the stream terminates
//
// Subscriptions are typically owned by a SubscriptionSet so an entire
// pipeline group tears down with one Close.
//
// # Usage
//
//	src := stream.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := stream.Map(src, func(n int) (int, error) { return n * 2, nil })
//	evens := stream.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results, _ := stream.Collect(ctx, evens)
package stream
