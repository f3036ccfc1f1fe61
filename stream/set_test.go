package stream

import (
	"sync"
	"sync/atomic"
	"testing"
)

// countingToken counts its cancels so tests can assert exactly-once.
type countingToken struct {
	id      string
	cancels atomic.Int64
}

func (c *countingToken) ID() string { return c.id }
func (c *countingToken) Cancel()    { c.cancels.Add(1) }

func TestSubscriptionSetCancelAll(t *testing.T) {
	set := NewSubscriptionSet()
	tokens := make([]*countingToken, 5)
	for i := range tokens {
		tokens[i] = &countingToken{id: string(rune('a' + i))}
		set.Add(tokens[i])
	}
	if set.Len() != 5 {
		t.Fatalf("expected 5 held tokens, got %d", set.Len())
	}

	set.CancelAll()

	for i, tok := range tokens {
		if got := tok.cancels.Load(); got != 1 {
			t.Errorf("token %d cancelled %d times, want 1", i, got)
		}
	}
	if set.Len() != 0 {
		t.Errorf("set must be empty after CancelAll, got %d", set.Len())
	}

	// Second CancelAll must not touch the tokens again.
	set.CancelAll()
	for i, tok := range tokens {
		if got := tok.cancels.Load(); got != 1 {
			t.Errorf("token %d re-cancelled: %d", i, got)
		}
	}
}

func TestSubscriptionSetCancelAllEmpty(t *testing.T) {
	set := NewSubscriptionSet()
	set.CancelAll()
	if set.Len() != 0 {
		t.Error("empty CancelAll must stay empty")
	}
}

func TestSubscriptionSetRemove(t *testing.T) {
	set := NewSubscriptionSet()
	tok := &countingToken{id: "x"}
	set.Add(tok)
	set.Remove(tok)
	set.CancelAll()
	if tok.cancels.Load() != 0 {
		t.Error("removed token must not be cancelled by the set")
	}
}

func TestSubscriptionSetCloseCancelsLateAdds(t *testing.T) {
	set := NewSubscriptionSet()
	if err := set.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok := &countingToken{id: "late"}
	set.Add(tok)
	if tok.cancels.Load() != 1 {
		t.Error("Add after Close must cancel the token immediately")
	}
	if set.Len() != 0 {
		t.Error("closed set must not retain tokens")
	}

	// Close is safe to call again.
	if err := set.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubscriptionSetScopedTeardown(t *testing.T) {
	subj := NewSubject[int]()
	rec := newRecorder[int]()

	func() {
		set := NewSubscriptionSet()
		defer set.Close()
		set.Add(subj.Publisher().Subscribe(rec))
		_ = subj.Send(1)
	}()

	// The scope exited, so the subscription is gone.
	_ = subj.Send(2)
	if !intsEqual(rec.Values(), []int{1}) {
		t.Errorf("expected only the in-scope value, got %v", rec.Values())
	}
	if subj.SubscriberCount() != 0 {
		t.Error("scope teardown must detach the subscription")
	}
}

func TestSubscriptionSetConcurrentAddAndCancelAll(t *testing.T) {
	set := NewSubscriptionSet()
	var wg sync.WaitGroup
	tokens := make([]*countingToken, 64)
	for i := range tokens {
		tokens[i] = &countingToken{id: string(rune(i))}
	}

	for _, tok := range tokens {
		wg.Add(1)
		go func(tok *countingToken) {
			defer wg.Done()
			set.Add(tok)
		}(tok)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		set.CancelAll()
	}()
	wg.Wait()
	set.CancelAll()

	for i, tok := range tokens {
		if got := tok.cancels.Load(); got != 1 {
			t.Errorf("token %d cancelled %d times, want exactly 1", i, got)
		}
	}
}
