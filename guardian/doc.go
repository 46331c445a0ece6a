// Package guardian provides the central dispatcher for error capture and
// fan-out reporting.
//
// A Guardian owns an ordered list of sinks. Reports handed to LogMessage /
// LogError / LogPanic are normalized into a single text message and delivered
// to every sink in registration order. The fan-out is fire-and-forget: a sink
// is contractually forbidden from panicking, and the dispatcher additionally
// contains any panic a misbehaving sink raises so the remaining sinks are
// still attempted.
//
// # Interception
//
// Instead of mutating process-global handler bindings, interception is
// modeled as explicit handler chains: the host owns a PanicHook and/or an
// ErrorHook and dispatches its error signals through them. AttachPanicHook /
// AttachErrorHook wrap whatever handler is currently installed: the Guardian
// reports first, then the previously-installed handler is invoked exactly
// once with the original arguments. Attaching to a nil hook is a no-op.
//
// # Chaining
//
// AddSink, LogMessage, LogError, LogPanic, Guard and both Attach methods
// return the receiver purely to support fluent setup:
//
//	g := guardian.New().
//		AddSink(sink.NewConsole()).
//		AttachPanicHook(hook)
package guardian
