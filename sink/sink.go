package sink

// Sink is a delivery target for a finished text report.
//
// Implementations must not panic and must not block indefinitely: blocking
// briefly for operator acknowledgment or a network round-trip is allowed,
// but control must eventually return to the caller.
//
// Delivery success/failure is not observable through WriteMessage. Sinks
// whose delivery can fail may expose an additional status-returning method
// (see Remote.Deliver); WriteMessage always swallows the outcome.
type Sink interface {
	WriteMessage(msg string)
}

// Attempt identifies one delivery attempt made by a sink.
type Attempt int

const (
	// AttemptNone means no delivery was attempted (e.g. transport unavailable).
	AttemptNone Attempt = iota
	// AttemptPrimary is the first (primary) delivery attempt.
	AttemptPrimary
	// AttemptFallback is the one-shot fallback attempt after a failed primary.
	AttemptFallback
)

// Result describes the outcome of a status-returning delivery.
//
// Delivered reports whether some attempt succeeded. Last records how far
// delivery got; Err holds the terminal error of the last attempt, if any.
type Result struct {
	Delivered bool
	Last      Attempt
	Err       error
}
