// Package sink provides delivery targets for finished error reports.
//
// A Sink accepts a finished text message and attempts to deliver it. Delivery
// is fire-and-forget: WriteMessage has no return value, must not panic, and
// must not block indefinitely, so that one failing sink never prevents the
// others from being attempted.
//
// Built-in sinks:
//   - Console: writes to an io.Writer (stderr by default); silent no-op when
//     no writer is configured.
//   - Modal: prints the report and blocks until the operator acknowledges.
//     NOT RECOMMENDED for production (every error interrupts the operator).
//   - BufferedModal: like Modal, but coalesces rapid successive reports into
//     one acknowledgment using a short quiet window.
//   - Remote: delivers to an HTTP endpoint with a blocking round-trip and a
//     one-shot GET fallback.
//   - DebugWindow: experimental; serves accumulated reports as escaped HTML
//     on a localhost listener.
//
// Sinks that can observably fail (Remote) additionally expose a
// status-returning Deliver method for callers who want per-attempt results;
// WriteMessage still swallows the result to preserve the fan-out contract.
package sink
