// Package watchmen captures runtime errors inside a Go process and fans
// human-readable reports out to a configurable set of sinks (console,
// blocking prompt, remote HTTP endpoint).
//
// The main entry points are:
//   - New: construct an explicitly-owned Guardian and wire it yourself.
//   - Default: the process-wide Guardian, created lazily at most once.
//   - Auto: zero-configuration setup — Default plus a console sink, a
//     default-configured remote sink, and both interception hooks attached.
//
// # Quick start
//
//	hook := guardian.NewPanicHook(nil)
//	g := watchmen.Auto(watchmen.AutoSpec{
//		ReportURL: "https://collect.example.com/watchmen/report.aspx",
//		PanicHook: hook,
//	})
//
//	// Route faults through the hook wherever the process catches them:
//	defer func() {
//		if p := recover(); p != nil {
//			hook.Dispatch(p, 1, "worker")
//		}
//	}()
//
//	g.LogMessage("deployment canary: reporting wired")
//
// # Design
//
// The Guardian owns an ordered, append-only sink list; one report is
// delivered to every sink in registration order, independently, and a
// failing sink never prevents the others from being attempted. Delivery
// failures are swallowed by contract: watchmen is additive instrumentation,
// and failures in its own operation must never disturb the host process.
//
// Interception is explicit rather than global: the host owns PanicHook /
// ErrorHook dispatch points and the Guardian composes over whatever handler
// was previously installed (reporting first, then delegating exactly once).
//
// The remote sink delivers synchronously — a blocking round-trip on the
// calling goroutine — so a report sent during process teardown completes
// before the process exits. See the sink package for the delivery contracts
// of the individual sinks.
//
// # Building blocks
//
//   - github.com/evan-idocoding/watchmen/guardian: the dispatcher, hook
//     chains, and the stack-trace facility
//   - github.com/evan-idocoding/watchmen/sink: delivery targets and the
//     DiagnosticSource capability
package watchmen
