package sink

import (
	"html"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// DebugWindow serves accumulated reports as escaped HTML on a localhost
// listener, lazily started on the first write.
//
// Experimental and unvetted: it is intended as a development aid and is not
// part of the default wiring. The listener is never shut down by the sink;
// use Close when the surface is no longer needed.
type DebugWindow struct {
	addr string

	mu       sync.Mutex
	messages []string
	ln       net.Listener
	startErr error
}

// DebugWindowOption configures a DebugWindow sink.
type DebugWindowOption func(*DebugWindow)

// WithDebugWindowAddr sets the listen address (default "127.0.0.1:0").
func WithDebugWindowAddr(addr string) DebugWindowOption {
	return func(d *DebugWindow) {
		if addr != "" {
			d.addr = addr
		}
	}
}

// NewDebugWindow returns a DebugWindow sink. The listener is not opened
// until the first report arrives.
func NewDebugWindow(opts ...DebugWindowOption) *DebugWindow {
	d := &DebugWindow{addr: "127.0.0.1:0"}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// WriteMessage implements Sink. It records msg and opens the display surface
// if it is not open yet. Listen failures are swallowed (the sink degrades to
// an in-memory accumulator).
func (d *DebugWindow) WriteMessage(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.messages = append(d.messages, msg)
	if d.ln != nil || d.startErr != nil {
		return
	}

	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		d.startErr = err
		return
	}
	d.ln = ln

	srv := &http.Server{
		Handler:           http.HandlerFunc(d.serve),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() { _ = srv.Serve(ln) }()
}

// URL returns the address of the display surface ("" when it is not open).
func (d *DebugWindow) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ln == nil {
		return ""
	}
	return "http://" + d.ln.Addr().String() + "/"
}

// Close shuts the display surface down. Recorded reports are kept.
func (d *DebugWindow) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ln == nil {
		return nil
	}
	err := d.ln.Close()
	d.ln = nil
	return err
}

func (d *DebugWindow) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	d.mu.Lock()
	messages := make([]string, len(d.messages))
	copy(messages, d.messages)
	d.mu.Unlock()

	var b strings.Builder
	b.WriteString("<!doctype html><title>watchmen debug</title><body>\n")
	for _, m := range messages {
		b.WriteString("<pre>")
		b.WriteString(html.EscapeString(m))
		b.WriteString("</pre>\n")
	}
	b.WriteString("</body>\n")
	_, _ = w.Write([]byte(b.String()))
}
