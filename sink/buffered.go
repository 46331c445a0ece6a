package sink

import (
	"strings"
	"sync"
	"time"
)

// QuietWindow is the delay the BufferedModal sink waits after the first
// buffered report before flushing. Reports arriving within the window are
// coalesced into a single acknowledgment.
const QuietWindow = 100 * time.Millisecond

// BufferedModal accumulates reports and flushes them as one blocking
// acknowledgment after a short quiet window.
//
// Rationale: a report storm (e.g. a loop failing repeatedly) would otherwise
// raise one interruption per report; batching within the window coalesces
// them into a single interruption.
type BufferedModal struct {
	p *prompter

	mu      sync.Mutex
	pending []string
	timer   *time.Timer // nil = no flush scheduled
}

// NewBufferedModal returns a BufferedModal sink prompting on stderr/stdin
// unless overridden. It accepts the same options as NewModal.
func NewBufferedModal(opts ...ModalOption) *BufferedModal {
	return &BufferedModal{p: newPrompter(opts)}
}

// WriteMessage implements Sink.
//
// It appends msg to the pending buffer and, if no flush is currently
// scheduled, schedules one to fire after QuietWindow.
func (b *BufferedModal) WriteMessage(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, msg)
	if b.timer == nil {
		b.timer = time.AfterFunc(QuietWindow, b.Dump)
	}
}

// Dump flushes the buffer now: it joins all pending reports with newlines
// and raises one blocking acknowledgment with the combined text.
//
// The buffer is swapped out atomically before the prompt is raised, so a
// report written while a flush is in progress lands in the fresh buffer and
// schedules an independent flush of its own. No report is ever dropped.
func (b *BufferedModal) Dump() {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	b.p.prompt(strings.Join(pending, "\n"))
}
