package guardian

import (
	"fmt"
	"runtime"
	"strings"
)

// TraceFunc maps an exception-like value to an ordered sequence of
// human-readable frame strings. The Guardian treats it as a black box and
// only joins its output with newlines.
type TraceFunc func(v any) []string

// StackProvider is implemented by values that carry their own captured
// stack, e.g. errors recorded at their origin.
type StackProvider interface {
	StackFrames() []string
}

// DefaultTrace is the trace facility used when none is configured.
//
// Values implementing StackProvider supply their own frames; everything else
// falls back to the current goroutine's stack with dispatcher-internal
// frames removed.
func DefaultTrace(v any) []string {
	if sp, ok := v.(StackProvider); ok {
		return sp.StackFrames()
	}
	return currentFrames()
}

const maxTraceDepth = 32

func currentFrames() []string {
	pcs := make([]uintptr, maxTraceDepth)
	// Skip runtime.Callers and currentFrames itself; internal dispatcher
	// frames are filtered below because the call depth varies by entry point.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	out := make([]string, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function == "" || !internalFrame(f.Function) {
			out = append(out, formatFrame(f))
		}
		if !more {
			break
		}
	}
	return out
}

func internalFrame(fn string) bool {
	const pkg = "github.com/evan-idocoding/watchmen/guardian."
	return strings.HasPrefix(fn, pkg)
}

func formatFrame(f runtime.Frame) string {
	fn := f.Function
	if fn == "" {
		fn = "unknown"
	}
	return fmt.Sprintf("at %s (%s:%d)", fn, f.File, f.Line)
}
