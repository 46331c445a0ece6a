package watchmen

import (
	"sync"

	"github.com/evan-idocoding/watchmen/guardian"
	"github.com/evan-idocoding/watchmen/sink"
)

// Guardian re-exports guardian.Guardian so callers can start from the root
// package alone.
type Guardian = guardian.Guardian

// Sink re-exports sink.Sink.
type Sink = sink.Sink

// PanicHook re-exports guardian.PanicHook.
type PanicHook = guardian.PanicHook

// ErrorHook re-exports guardian.ErrorHook.
type ErrorHook = guardian.ErrorHook

// New constructs an explicitly-owned Guardian. Prefer this over Default when
// your assembly code can pass the instance to whoever needs it.
func New(opts ...guardian.Option) *guardian.Guardian { return guardian.New(opts...) }

var defaultGuardian = sync.OnceValue(func() *guardian.Guardian {
	return guardian.New()
})

// Default returns the process-wide Guardian, creating it on first call.
//
// Default is idempotent: every call returns the identical instance, and
// sinks registered through one reference are visible through any other.
func Default() *guardian.Guardian {
	return defaultGuardian()
}

// AutoSpec configures Auto.
//
// All fields are optional. Hooks that are nil are simply not attached
// (the corresponding interception target is absent).
type AutoSpec struct {
	// ReportURL overrides the remote sink's endpoint
	// (default: sink.DefaultEndpointPath).
	ReportURL string

	// RemoteOptions are applied to the remote sink after ReportURL.
	RemoteOptions []sink.RemoteOption

	// PanicHook is the host's routed-fault dispatch point, if any.
	PanicHook *guardian.PanicHook

	// ErrorHook is the host's uncaught-error dispatch point, if any.
	ErrorHook *guardian.ErrorHook
}

// Auto is the zero-configuration entry point: it obtains Default, attaches a
// console sink and a default-configured remote sink, attaches both hooks
// when present, and returns the configured Guardian.
//
// Each call appends a fresh console and remote sink; duplicates deliver
// independently, so call Auto once during process setup.
func Auto(spec AutoSpec) *guardian.Guardian {
	g := Default()
	g.AddSink(sink.NewConsole())

	ropts := make([]sink.RemoteOption, 0, 1+len(spec.RemoteOptions))
	if spec.ReportURL != "" {
		ropts = append(ropts, sink.WithReportURL(spec.ReportURL))
	}
	ropts = append(ropts, spec.RemoteOptions...)
	g.AddSink(sink.NewRemote(ropts...))

	g.AttachPanicHook(spec.PanicHook)
	g.AttachErrorHook(spec.ErrorHook)
	return g
}
