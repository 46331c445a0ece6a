package guardian

import (
	"fmt"
	"strings"
	"sync"

	"github.com/evan-idocoding/watchmen/sink"
)

// Guardian is the central dispatcher: it owns an ordered, append-only sink
// list and fans every finished report out to each sink in registration
// order.
//
// A Guardian is safe for concurrent use. Construct one explicitly with New
// and hand it to whatever needs it; the root package additionally offers a
// process-wide default for zero-configuration setups.
type Guardian struct {
	trace TraceFunc

	mu    sync.Mutex
	sinks []sink.Sink
}

// Option configures a Guardian at construction time.
type Option func(*Guardian)

// WithTrace sets the stack-trace facility. Nil restores the default.
func WithTrace(fn TraceFunc) Option {
	return func(g *Guardian) {
		if fn != nil {
			g.trace = fn
		}
	}
}

// WithSinks registers sinks at construction time (nil sinks are ignored).
func WithSinks(sinks ...sink.Sink) Option {
	return func(g *Guardian) {
		for _, s := range sinks {
			if s != nil {
				g.sinks = append(g.sinks, s)
			}
		}
	}
}

// New returns a Guardian with no sinks attached unless configured otherwise.
func New(opts ...Option) *Guardian {
	g := &Guardian{trace: DefaultTrace}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// AddSink appends s to the sink list. Insertion order is delivery order;
// duplicates are permitted and each registration receives every report
// independently. There is no removal. Nil sinks are ignored.
func (g *Guardian) AddSink(s sink.Sink) *Guardian {
	if s == nil {
		return g
	}
	g.mu.Lock()
	g.sinks = append(g.sinks, s)
	g.mu.Unlock()
	return g
}

// LogMessage delivers text to every registered sink in registration order.
//
// Sinks must not panic; if one does anyway, the panic is contained and
// swallowed so the remaining sinks are still attempted. Delivery outcome is
// not observable here: the fan-out is fire-and-forget.
func (g *Guardian) LogMessage(text string) *Guardian {
	g.mu.Lock()
	sinks := make([]sink.Sink, len(g.sinks))
	copy(sinks, g.sinks)
	g.mu.Unlock()

	for _, s := range sinks {
		writeNoPanic(s, text)
	}
	return g
}

// LogError normalizes err into a report ("<type> - <message>" followed by
// one frame per line) and fans it out.
func (g *Guardian) LogError(err error) *Guardian {
	if err == nil {
		return g
	}
	return g.LogMessage(formatReport(fmt.Sprintf("%T", err), err.Error(), g.trace(err)))
}

// LogPanic normalizes a recovered panic value into a report and fans it out.
// An error value is reported under its concrete type; any other value is
// reported under the name "panic".
func (g *Guardian) LogPanic(v any) *Guardian {
	name := "panic"
	if err, ok := v.(error); ok {
		name = fmt.Sprintf("%T", err)
	}
	return g.LogMessage(formatReport(name, fmt.Sprint(v), g.trace(v)))
}

// Guard runs fn, recovering any panic it raises. A recovered panic is
// reported via LogPanic plus a supplementary message naming origin; it is
// not rethrown.
func (g *Guardian) Guard(origin string, fn func()) (out *Guardian) {
	// Named result: the receiver must come back even when the deferred
	// recover unwinds fn, or fluent callers would nil-deref.
	out = g
	if fn == nil {
		return out
	}
	defer func() {
		if p := recover(); p != nil {
			g.LogPanic(p)
			g.LogMessage("origin: " + origin)
		}
	}()
	fn()
	return out
}

func formatReport(name, desc string, frames []string) string {
	var b strings.Builder
	b.Grow(len(name) + len(desc) + 3 + 16*len(frames))
	b.WriteString(name)
	b.WriteString(" - ")
	b.WriteString(desc)
	for _, f := range frames {
		b.WriteByte('\n')
		b.WriteString(f)
	}
	return b.String()
}

// writeNoPanic contains panics from misbehaving sinks. The failure is
// swallowed: the dispatcher must never itself disturb the host.
func writeNoPanic(s sink.Sink, text string) {
	defer func() {
		_ = recover()
	}()
	s.WriteMessage(text)
}
