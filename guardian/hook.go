package guardian

import (
	"fmt"
	"sync"
)

// PanicHandler handles a routed fault: the fault value, a numeric error
// code, and a free-text origin.
type PanicHandler func(v any, code int, origin string)

// PanicHook is a host-owned dispatch point for routed faults.
//
// The host installs its own handler (possibly none) and routes every fault
// through Dispatch. Interceptors compose over whatever handler is currently
// installed instead of replacing a global binding in place.
type PanicHook struct {
	mu      sync.Mutex
	handler PanicHandler
}

// NewPanicHook returns a hook with h installed (h may be nil).
func NewPanicHook(h PanicHandler) *PanicHook {
	return &PanicHook{handler: h}
}

// Intercept replaces the current handler with wrap(previous). The previous
// handler passed to wrap may be nil (nothing was installed).
func (h *PanicHook) Intercept(wrap func(prev PanicHandler) PanicHandler) {
	if wrap == nil {
		return
	}
	h.mu.Lock()
	h.handler = wrap(h.handler)
	h.mu.Unlock()
}

// Dispatch routes a fault through the currently installed handler.
// With no handler installed, Dispatch is a no-op.
func (h *PanicHook) Dispatch(v any, code int, origin string) {
	h.mu.Lock()
	fn := h.handler
	h.mu.Unlock()
	if fn != nil {
		fn(v, code, origin)
	}
}

// ErrorHandler handles an uncaught-error signal: the message, the source
// file, and the line number.
type ErrorHandler func(msg, file string, line int)

// ErrorHook is a host-owned dispatch point for uncaught-error signals,
// with the same chaining contract as PanicHook.
type ErrorHook struct {
	mu      sync.Mutex
	handler ErrorHandler
}

// NewErrorHook returns a hook with h installed (h may be nil).
func NewErrorHook(h ErrorHandler) *ErrorHook {
	return &ErrorHook{handler: h}
}

// Intercept replaces the current handler with wrap(previous). The previous
// handler passed to wrap may be nil.
func (h *ErrorHook) Intercept(wrap func(prev ErrorHandler) ErrorHandler) {
	if wrap == nil {
		return
	}
	h.mu.Lock()
	h.handler = wrap(h.handler)
	h.mu.Unlock()
}

// Dispatch routes a signal through the currently installed handler.
// With no handler installed, Dispatch is a no-op.
func (h *ErrorHook) Dispatch(msg, file string, line int) {
	h.mu.Lock()
	fn := h.handler
	h.mu.Unlock()
	if fn != nil {
		fn(msg, file, line)
	}
}

// AttachPanicHook intercepts h so that every dispatched fault is reported
// before the previously-installed handler runs.
//
// The wrapper logs the fault value, then a supplementary message carrying
// the numeric code and origin, then invokes the captured previous handler
// (if one existed) with the original arguments — exactly once, always after
// this Guardian's own reporting. A nil hook is a no-op.
func (g *Guardian) AttachPanicHook(h *PanicHook) *Guardian {
	if h == nil {
		return g
	}
	h.Intercept(func(prev PanicHandler) PanicHandler {
		return func(v any, code int, origin string) {
			g.LogPanic(v)
			g.LogMessage(fmt.Sprintf("code: %d origin: %s", code, origin))
			if prev != nil {
				prev(v, code, origin)
			}
		}
	})
	return g
}

// AttachErrorHook intercepts h so that every dispatched signal is reported
// before the previously-installed handler runs.
//
// The wrapper logs the message together with its source file and line, then
// invokes the captured previous handler (if one existed) with the original
// arguments. A nil hook is a no-op.
func (g *Guardian) AttachErrorHook(h *ErrorHook) *Guardian {
	if h == nil {
		return g
	}
	h.Intercept(func(prev ErrorHandler) ErrorHandler {
		return func(msg, file string, line int) {
			g.LogMessage(fmt.Sprintf("%s\n at %s:%d", msg, file, line))
			if prev != nil {
				prev(msg, file, line)
			}
		}
	})
	return g
}
