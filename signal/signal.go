// Package signal provides a single-slot observer primitive: a named event
// point holding at most one connected callback, emitted synchronously or on a
// background goroutine.
//
// There is deliberately no fan-out. Connecting a new callback silently
// replaces the previous one, and nothing orders emissions across signals.
package signal

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danmuck/genkit/dispatch"
	"github.com/danmuck/genkit/logging"
	"github.com/danmuck/genkit/textutil"
)

var ErrNotConnected = errors.New("signal: callback not connected")

// Callback receives the merged positional and keyword arguments of an
// emission.
type Callback func(args []any, kwargs map[string]any)

// Dispatch selects how an emission runs.
type Dispatch int

const (
	// DispatchDefault uses the signal's configured threaded flag.
	DispatchDefault Dispatch = iota
	// DispatchSync runs the callback on the caller's goroutine.
	DispatchSync
	// DispatchThreaded runs the callback on a new goroutine.
	DispatchThreaded
)

// Signal holds at most one callback binding. Connect, Disconnect, and Emit
// are safe for concurrent use.
type Signal struct {
	name     string
	threaded bool
	daemon   bool
	logger   zerolog.Logger
	runner   *dispatch.Runner

	mu       sync.Mutex
	callback Callback
	cbArgs   []any
	cbKwargs map[string]any
}

type Option func(*Signal)

// Threaded sets the default dispatch mode for Emit.
func Threaded(v bool) Option {
	return func(s *Signal) { s.threaded = v }
}

// Daemon controls whether threaded emissions are tracked by Join. Daemon
// emissions are not waited on before process exit.
func Daemon(v bool) Option {
	return func(s *Signal) { s.daemon = v }
}

// WithLogger injects the logger the signal writes diagnostics to.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Signal) { s.logger = logger }
}

// New builds a signal. Without WithLogger it uses the process default from the
// logging package.
func New(name string, opts ...Option) *Signal {
	if name == "" {
		name = "signal"
	}
	s := &Signal{
		name:   name,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = dispatch.NewRunner("signal "+name, s.daemon, s.logger)
	return s
}

func (s *Signal) Name() string { return s.name }

// String renders the signal's configuration for diagnostics.
func (s *Signal) String() string {
	return textutil.ReprString("Signal",
		textutil.Field{Key: "name", Value: s.name},
		textutil.Field{Key: "threaded", Value: s.threaded},
		textutil.Field{Key: "daemon", Value: s.daemon},
	)
}

// Connect binds cb with extra positional arguments, replacing any previous
// binding. It never fails.
func (s *Signal) Connect(cb Callback, args ...any) {
	s.ConnectKW(cb, args, nil)
}

// ConnectKW binds cb with extra positional and keyword arguments, replacing
// any previous binding. It never fails.
func (s *Signal) ConnectKW(cb Callback, args []any, kwargs map[string]any) {
	s.mu.Lock()
	s.callback = cb
	s.cbArgs = append([]any(nil), args...)
	s.cbKwargs = cloneKwargs(kwargs)
	s.mu.Unlock()
	s.logger.Debug().
		Str("signal", s.name).
		Str("callback", callbackName(cb)).
		Int("args", len(args)).
		Int("kwargs", len(kwargs)).
		Msg("callback connected")
}

// Disconnect clears the binding when cb is the currently connected callback.
// Any other callback, including one on an empty signal, yields
// ErrNotConnected: an empty slot is indistinguishable from a different
// callback.
func (s *Signal) Disconnect(cb Callback) error {
	s.mu.Lock()
	if !sameCallback(s.callback, cb) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q is not connected to %q",
			ErrNotConnected, callbackName(cb), s.name)
	}
	s.callback = nil
	s.cbArgs = nil
	s.cbKwargs = nil
	s.mu.Unlock()
	s.logger.Debug().
		Str("signal", s.name).
		Str("callback", callbackName(cb)).
		Msg("callback removed")
	return nil
}

// DisconnectIgnore is Disconnect with the error path suppressed: a mismatch is
// logged at debug level and the signal is left unchanged.
func (s *Signal) DisconnectIgnore(cb Callback) {
	if err := s.Disconnect(cb); err != nil {
		s.logger.Debug().
			Str("signal", s.name).
			Str("callback", callbackName(cb)).
			Msg("callback not connected")
	}
}

// Emit runs the connected callback with the signal's default dispatch mode and
// no keyword arguments. See EmitKW.
func (s *Signal) Emit(args ...any) error {
	return s.EmitKW(DispatchDefault, args, nil)
}

// EmitKW runs the connected callback. Positional arguments are the bound ones
// followed by args; keyword arguments are the bound ones overlaid by kwargs.
// With no callback connected it is a no-op.
//
// Synchronous dispatch runs on the caller's goroutine; a callback panic is
// recovered and returned as an error. Threaded dispatch returns immediately
// and callback panics never reach the caller; the runner logs them.
func (s *Signal) EmitKW(d Dispatch, args []any, kwargs map[string]any) error {
	cb, finalArgs, finalKwargs, ok := s.binding(args, kwargs)
	if !ok {
		return nil
	}
	if s.resolveThreaded(d) {
		s.runner.Go(emitLabel(s.name, cb), func() {
			cb(finalArgs, finalKwargs)
		})
		return nil
	}
	return invoke(cb, finalArgs, finalKwargs)
}

// EmitWait is a threaded emission that hands back the dispatch handle so the
// caller may await completion or observe a recovered panic. The handle is nil
// when no callback is connected.
func (s *Signal) EmitWait(args []any, kwargs map[string]any) *dispatch.Handle {
	cb, finalArgs, finalKwargs, ok := s.binding(args, kwargs)
	if !ok {
		return nil
	}
	return s.runner.Go(emitLabel(s.name, cb), func() {
		cb(finalArgs, finalKwargs)
	})
}

// Join blocks until every non-daemon threaded emission of this signal has
// finished.
func (s *Signal) Join() {
	s.runner.Join()
}

// Connected reports whether a callback is currently bound.
func (s *Signal) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callback != nil
}

// binding snapshots the current callback with arguments merged for one
// emission. ok is false when the signal is empty.
func (s *Signal) binding(args []any, kwargs map[string]any) (Callback, []any, map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.callback == nil {
		return nil, nil, nil, false
	}
	finalArgs := make([]any, 0, len(s.cbArgs)+len(args))
	finalArgs = append(finalArgs, s.cbArgs...)
	finalArgs = append(finalArgs, args...)

	finalKwargs := cloneKwargs(s.cbKwargs)
	if len(kwargs) > 0 {
		if finalKwargs == nil {
			finalKwargs = make(map[string]any, len(kwargs))
		}
		for k, v := range kwargs {
			finalKwargs[k] = v
		}
	}
	return s.callback, finalArgs, finalKwargs, true
}

func (s *Signal) resolveThreaded(d Dispatch) bool {
	switch d {
	case DispatchSync:
		return false
	case DispatchThreaded:
		return true
	default:
		return s.threaded
	}
}

func invoke(cb Callback, args []any, kwargs map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("signal: callback panic: %v", r)
		}
	}()
	cb(args, kwargs)
	return nil
}

func cloneKwargs(kwargs map[string]any) map[string]any {
	if kwargs == nil {
		return nil
	}
	out := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		out[k] = v
	}
	return out
}

func sameCallback(a, b Callback) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func emitLabel(name string, cb Callback) string {
	return name + " " + callbackName(cb)
}

func callbackName(cb Callback) string {
	if cb == nil {
		return "<nil>"
	}
	pc := reflect.ValueOf(cb).Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("0x%x", pc)
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
