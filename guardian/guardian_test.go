package guardian

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// recorder collects every delivered message, optionally tagged per sink, so
// fan-out order is observable across sinks.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) add(m string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, m)
	r.mu.Unlock()
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.msgs))
	copy(out, r.msgs)
	return out
}

// sinkFunc adapts a function to the sink interface for tests.
type sinkFunc func(msg string)

func (f sinkFunc) WriteMessage(msg string) { f(msg) }

func TestLogMessage_FanOutInRegistrationOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New().
		AddSink(sinkFunc(func(m string) { rec.add("a:" + m) })).
		AddSink(sinkFunc(func(m string) { rec.add("b:" + m) })).
		AddSink(sinkFunc(func(m string) { rec.add("c:" + m) }))

	g.LogMessage("boom")

	want := []string{"a:boom", "b:boom", "c:boom"}
	got := rec.messages()
	if len(got) != len(want) {
		t.Fatalf("deliveries=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("deliveries=%v, want %v", got, want)
		}
	}
}

func TestAddSink_DuplicatesDeliverIndependently(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := sinkFunc(func(m string) { rec.add(m) })

	New().AddSink(s).AddSink(s).LogMessage("x")

	if got := len(rec.messages()); got != 2 {
		t.Fatalf("deliveries=%d, want 2 (duplicates permitted)", got)
	}
}

func TestAddSink_NilIgnored(t *testing.T) {
	t.Parallel()

	g := New(WithSinks(nil))
	g.AddSink(nil)
	// Must not panic on fan-out.
	g.LogMessage("x")
}

func TestChainingReturnsReceiver(t *testing.T) {
	t.Parallel()

	g := New()
	if g.AddSink(sinkFunc(func(string) {})) != g {
		t.Fatalf("AddSink did not return receiver")
	}
	if g.LogMessage("m") != g {
		t.Fatalf("LogMessage did not return receiver")
	}
	if g.LogError(errors.New("e")) != g {
		t.Fatalf("LogError did not return receiver")
	}
	if g.AttachPanicHook(nil) != g || g.AttachErrorHook(nil) != g {
		t.Fatalf("attach did not return receiver")
	}
}

func TestLogError_FormatsNameDescriptionAndFrames(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New(
		WithTrace(func(any) []string { return []string{"f1", "f2"} }),
		WithSinks(sinkFunc(rec.add)),
	)

	g.LogError(errors.New("boom"))

	got := rec.messages()
	if len(got) != 1 {
		t.Fatalf("deliveries=%d, want 1", len(got))
	}
	want := "*errors.errorString - boom\nf1\nf2"
	if got[0] != want {
		t.Fatalf("report=%q, want %q", got[0], want)
	}
}

func TestLogError_NilIsNoOp(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	New(WithSinks(sinkFunc(rec.add))).LogError(nil)

	if got := len(rec.messages()); got != 0 {
		t.Fatalf("deliveries=%d, want 0", got)
	}
}

func TestLogPanic_NonErrorValueNamedPanic(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New(
		WithTrace(func(any) []string { return nil }),
		WithSinks(sinkFunc(rec.add)),
	)

	g.LogPanic("kaboom")

	got := rec.messages()
	if len(got) != 1 || got[0] != "panic - kaboom" {
		t.Fatalf("report=%v, want [panic - kaboom]", got)
	}
}

func TestLogMessage_MisbehavingSinkDoesNotAbortFanOut(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New().
		AddSink(sinkFunc(func(string) { panic("bad sink") })).
		AddSink(sinkFunc(rec.add))

	g.LogMessage("still delivered")

	got := rec.messages()
	if len(got) != 1 || got[0] != "still delivered" {
		t.Fatalf("deliveries=%v, want the second sink reached", got)
	}
}

func TestGuard_RecoversAndReports(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New(
		WithTrace(func(any) []string { return nil }),
		WithSinks(sinkFunc(rec.add)),
	)

	g.Guard("worker", func() { panic("boom") })

	got := rec.messages()
	if len(got) != 2 {
		t.Fatalf("deliveries=%v, want panic report + origin message", got)
	}
	if got[0] != "panic - boom" {
		t.Fatalf("report=%q, want %q", got[0], "panic - boom")
	}
	if got[1] != "origin: worker" {
		t.Fatalf("supplementary=%q, want %q", got[1], "origin: worker")
	}
}

func TestGuard_ReturnsReceiverAfterRecoveredPanic(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := New(
		WithTrace(func(any) []string { return nil }),
		WithSinks(sinkFunc(rec.add)),
	)

	if got := g.Guard("worker", func() { panic("boom") }); got != g {
		t.Fatalf("Guard returned %v after recovered panic, want receiver", got)
	}

	// The fluent style must keep working across a recovered panic.
	g.Guard("worker", func() { panic("boom") }).LogMessage("still chained")

	got := rec.messages()
	if len(got) == 0 || got[len(got)-1] != "still chained" {
		t.Fatalf("deliveries=%v, want chained message last", got)
	}
}

func TestGuard_NoPanicNoReport(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	New(WithSinks(sinkFunc(rec.add))).Guard("worker", func() {})

	if got := len(rec.messages()); got != 0 {
		t.Fatalf("deliveries=%d, want 0", got)
	}
}

func TestDefaultTrace_UsesStackProvider(t *testing.T) {
	t.Parallel()

	err := stackedError{frames: []string{"at a (x.go:1)", "at b (y.go:2)"}}
	got := DefaultTrace(err)
	if len(got) != 2 || got[0] != "at a (x.go:1)" {
		t.Fatalf("frames=%v, want provider frames", got)
	}
}

func TestDefaultTrace_FallsBackToCurrentStack(t *testing.T) {
	t.Parallel()

	got := DefaultTrace(errors.New("plain"))
	if len(got) == 0 {
		t.Fatalf("want non-empty frames for plain error")
	}
	for _, f := range got {
		if !strings.HasPrefix(f, "at ") {
			t.Fatalf("frame=%q, want %q prefix", f, "at ")
		}
	}
}

type stackedError struct {
	frames []string
}

func (e stackedError) Error() string         { return "stacked" }
func (e stackedError) StackFrames() []string { return e.frames }
