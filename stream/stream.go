package stream

// Completion is the terminal signal of a subscription: finished, or failed
// with an error. The zero value is finished.
type Completion struct {
	err error
}

// Finished returns the successful terminal signal.
func Finished() Completion { return Completion{} }

// Failed returns a failed terminal signal carrying err. A nil err is
// equivalent to Finished.
func Failed(err error) Completion { return Completion{err: err} }

// Failed reports whether the completion carries an error.
func (c Completion) Failed() bool { return c.err != nil }

// Err returns the completion's error, nil when finished.
func (c Completion) Err() error { return c.err }

// Subscriber receives a publisher's values and terminal signal.
// OnValue is called zero or more times, then OnCompletion at most once;
// nothing is delivered after the completion.
type Subscriber[T any] interface {
	OnValue(T)
	OnCompletion(Completion)
}

// Publisher is a value source. Each Subscribe call is independent: the
// publisher keeps no subscriber state between subscriptions. Subscribe
// never blocks and never reports failure directly — failures arrive as a
// failed Completion on the subscriber.
type Publisher[T any] struct {
	subscribe func(Subscriber[T]) Subscription
}

// New builds a Publisher from a subscribe function. Operator constructors
// use this to close over their upstream and parameters.
func New[T any](subscribe func(Subscriber[T]) Subscription) Publisher[T] {
	return Publisher[T]{subscribe: subscribe}
}

// Subscribe registers sub as the receiver of this publisher's emissions and
// returns the subscription token. Synchronous sources may deliver during
// the call; the returned token is still valid (Cancel is then a no-op).
func (p Publisher[T]) Subscribe(sub Subscriber[T]) Subscription {
	return p.subscribe(sub)
}

// On adapts plain functions into a Subscriber. Either function may be nil.
func On[T any](value func(T), completion func(Completion)) Subscriber[T] {
	return funcSubscriber[T]{value: value, completion: completion}
}

type funcSubscriber[T any] struct {
	value      func(T)
	completion func(Completion)
}

func (s funcSubscriber[T]) OnValue(v T) {
	if s.value != nil {
		s.value(v)
	}
}

func (s funcSubscriber[T]) OnCompletion(c Completion) {
	if s.completion != nil {
		s.completion(c)
	}
}
