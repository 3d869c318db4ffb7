// Package dispatch runs callbacks on background goroutines on behalf of
// components that want fire-and-forget execution with panic isolation.
package dispatch

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Runner starts background tasks. A daemon runner does not track its tasks;
// a non-daemon runner counts them so Join can wait for completion before the
// process exits.
type Runner struct {
	name   string
	daemon bool
	logger zerolog.Logger
	wg     sync.WaitGroup
}

func NewRunner(name string, daemon bool, logger zerolog.Logger) *Runner {
	return &Runner{name: name, daemon: daemon, logger: logger}
}

func (r *Runner) Name() string { return r.name }

func (r *Runner) Daemon() bool { return r.daemon }

// Go runs fn on a new goroutine and returns immediately. A panic inside fn is
// recovered, logged at error level, and recorded on the returned handle; it
// never reaches the caller.
func (r *Runner) Go(label string, fn func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	if !r.daemon {
		r.wg.Add(1)
	}
	go func() {
		defer close(h.done)
		if !r.daemon {
			defer r.wg.Done()
		}
		defer func() {
			if rec := recover(); rec != nil {
				h.err = fmt.Errorf("dispatch: task %q panicked: %v", label, rec)
				r.logger.Error().
					Str("runner", r.name).
					Str("task", label).
					Interface("panic", rec).
					Msg("task panicked")
			}
		}()
		r.logger.Debug().Str("runner", r.name).Str("task", label).Msg("task started")
		fn()
	}()
	return h
}

// Join blocks until every task started by a non-daemon runner has finished.
// Join on a daemon runner returns immediately.
func (r *Runner) Join() {
	r.wg.Wait()
}

// Handle tracks one background task.
type Handle struct {
	done chan struct{}
	err  error
}

// Done is closed when the task finishes, whether it returned or panicked.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the task finishes and returns the recovered panic, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// Err returns the recovered panic once Done is closed. Before that it returns
// nil regardless of the task's fate.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
