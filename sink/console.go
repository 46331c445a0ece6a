package sink

import (
	"io"
	"os"
	"sync"
)

// Console writes each report to an io.Writer, one line per report.
//
// When the configured writer is nil (no console-like facility available),
// every call is a silent no-op. Writes are serialized and issued as a single
// Write call so concurrent reports do not interleave.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// ConsoleOption configures a Console sink.
type ConsoleOption func(*Console)

// WithConsoleWriter sets the output writer.
//
// A nil writer disables the sink (silent no-op); the default is os.Stderr.
func WithConsoleWriter(w io.Writer) ConsoleOption {
	return func(c *Console) { c.w = w }
}

// NewConsole returns a Console sink writing to os.Stderr unless overridden.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{w: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WriteMessage implements Sink.
func (c *Console) WriteMessage(msg string) {
	b := make([]byte, 0, len(msg)+1)
	b = append(b, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		b = append(b, '\n')
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.w == nil {
		return
	}
	_, _ = c.w.Write(b)
}
