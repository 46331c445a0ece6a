package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Modal prints each report and blocks until the operator acknowledges it by
// entering a newline.
//
// NOT RECOMMENDED for production use: every single report interrupts the
// operator. Prefer BufferedModal, which coalesces report storms into one
// interruption, or a non-interactive sink.
type Modal struct {
	p *prompter
}

// ModalOption configures a Modal sink.
type ModalOption func(*prompter)

// WithModalOutput sets the writer the report is printed to (default os.Stderr).
//
// A nil writer disables the sink entirely: nothing is printed and nothing is
// waited for.
func WithModalOutput(w io.Writer) ModalOption {
	return func(p *prompter) { p.out = w }
}

// WithModalInput sets the reader the acknowledgment is read from
// (default os.Stdin). A nil reader skips the acknowledgment wait.
func WithModalInput(r io.Reader) ModalOption {
	return func(p *prompter) { p.in = r }
}

// NewModal returns a Modal sink prompting on stderr/stdin unless overridden.
func NewModal(opts ...ModalOption) *Modal {
	return &Modal{p: newPrompter(opts)}
}

// WriteMessage implements Sink. It blocks until acknowledged.
func (m *Modal) WriteMessage(msg string) {
	m.p.prompt(msg)
}

// prompter is the blocking acknowledgment mechanism shared by Modal and
// BufferedModal. One prompt at a time; a nil output disables it.
type prompter struct {
	mu  sync.Mutex
	out io.Writer
	in  io.Reader
	br  *bufio.Reader
}

func newPrompter(opts []ModalOption) *prompter {
	p := &prompter{out: os.Stderr, in: os.Stdin}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *prompter) prompt(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return
	}

	_, _ = fmt.Fprintf(p.out, "%s\n[press enter to continue] ", msg)

	if p.in == nil {
		return
	}
	if p.br == nil {
		p.br = bufio.NewReader(p.in)
	}
	// Block until a full line (or EOF) arrives. Errors are swallowed: the
	// sink contract forbids propagating delivery failure.
	_, _ = p.br.ReadString('\n')
	_, _ = fmt.Fprintln(p.out)
}
