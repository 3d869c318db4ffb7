package dispatch

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/danmuck/genkit/internal/testutil/testlog"
	"github.com/danmuck/genkit/logging"
)

func TestGoRunsTask(t *testing.T) {
	testlog.Start(t)
	r := NewRunner("test", false, logging.Default())

	var ran atomic.Bool
	h := r.Go("flag", func() { ran.Store(true) })
	if err := h.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !ran.Load() {
		t.Fatalf("task never ran")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	testlog.Start(t)
	r := NewRunner("test", false, logging.Default())

	h := r.Go("boom", func() { panic("boom") })
	err := h.Wait()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected recovered panic, got %v", err)
	}
	if h.Err() == nil {
		t.Fatalf("Err must report the panic after completion")
	}
}

func TestErrBeforeCompletion(t *testing.T) {
	testlog.Start(t)
	r := NewRunner("test", false, logging.Default())

	release := make(chan struct{})
	h := r.Go("held", func() { <-release })
	if err := h.Err(); err != nil {
		t.Fatalf("Err before completion must be nil, got %v", err)
	}
	close(release)
	if err := h.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestJoinWaitsForTasks(t *testing.T) {
	testlog.Start(t)
	r := NewRunner("test", false, logging.Default())

	var count atomic.Int32
	for i := 0; i < 8; i++ {
		r.Go("inc", func() { count.Add(1) })
	}
	r.Join()
	if got := count.Load(); got != 8 {
		t.Fatalf("join returned with %d of 8 tasks done", got)
	}
}

func TestDaemonRunnerJoinReturnsImmediately(t *testing.T) {
	testlog.Start(t)
	r := NewRunner("daemon", true, logging.Default())

	release := make(chan struct{})
	h := r.Go("held", func() { <-release })
	r.Join()
	select {
	case <-h.Done():
		t.Fatalf("daemon task should still be running after Join")
	default:
	}
	close(release)
	if err := h.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
}
