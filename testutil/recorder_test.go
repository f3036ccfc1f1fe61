package testutil

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbukum/streamkit/stream"
)

func TestRecorderCapturesValues(t *testing.T) {
	rec := NewRecorder[int]()
	stream.FromSlice([]int{1, 2, 3}).Subscribe(rec)

	got := rec.Values()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("unexpected values: %v", got)
	}
	if !rec.Finished() {
		t.Error("expected finished")
	}
	if rec.Failed() {
		t.Error("did not expect failure")
	}
}

func TestRecorderCapturesFailure(t *testing.T) {
	boom := errors.New("boom")
	rec := NewRecorder[int]()
	stream.Fail[int](boom).Subscribe(rec)

	if !rec.Failed() {
		t.Fatal("expected failure")
	}
	if !errors.Is(rec.Err(), boom) {
		t.Errorf("unexpected error: %v", rec.Err())
	}
}

func TestRecorderWait(t *testing.T) {
	ch := make(chan int)
	rec := NewRecorder[int]()
	stream.FromChannel(ch).Subscribe(rec)

	if rec.Terminated() {
		t.Fatal("should not be terminated yet")
	}

	go func() {
		ch <- 42
		close(ch)
	}()

	if !rec.Wait(time.Second) {
		t.Fatal("stream did not terminate in time")
	}
	got := rec.Values()
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("unexpected values: %v", got)
	}
}

func TestRecorderWaitTimeout(t *testing.T) {
	rec := NewRecorder[int]()
	if rec.Wait(10 * time.Millisecond) {
		t.Error("Wait should time out without a completion")
	}
}

func TestEventually(t *testing.T) {
	var flag atomic.Bool
	go func() {
		time.Sleep(5 * time.Millisecond)
		flag.Store(true)
	}()
	Eventually(t, time.Second, flag.Load, "flag set")
}
