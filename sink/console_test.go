package sink

import (
	"bytes"
	"testing"
)

func TestConsole_WritesSingleLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewConsole(WithConsoleWriter(&buf))

	c.WriteMessage("boom")
	c.WriteMessage("again\n")

	if got, want := buf.String(), "boom\nagain\n"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestConsole_NilWriterIsNoOp(t *testing.T) {
	t.Parallel()

	c := NewConsole(WithConsoleWriter(nil))
	// Must not panic and must not block.
	c.WriteMessage("dropped")
}

func TestConsole_EmptyMessageStillTerminated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewConsole(WithConsoleWriter(&buf)).WriteMessage("")

	if got := buf.String(); got != "\n" {
		t.Fatalf("output=%q, want %q", got, "\n")
	}
}
