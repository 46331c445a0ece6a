package sink

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpointPath is the report endpoint used when no URL is configured.
const DefaultEndpointPath = "/watchmen/report.aspx"

// reportIDHeader carries a per-report identifier so a fallback attempt can be
// correlated with its failed primary on the receiving side.
const reportIDHeader = "X-Report-Id"

// Remote delivers reports to an HTTP endpoint with a blocking round-trip.
//
// Delivery is deliberately synchronous: reports are frequently sent while the
// host is tearing down, where deferred delivery could be abandoned before
// completion. Blocking the calling goroutine until the round-trip finishes is
// the accepted trade-off for a low-frequency, high-value event. No timeout is
// applied unless the configured http.Client carries one.
//
// The primary attempt is a POST with a form-encoded body. On a non-2xx
// response, or when the POST never produced a response at all, delivery falls
// back to one GET with the same payload as a query string; failure of the
// fallback is terminal and silent.
type Remote struct {
	url       string
	client    *http.Client
	diag      DiagnosticSource
	userAgent string
	location  string

	// seq disambiguates reports sharing a timestamp. Uniqueness only; it
	// carries no ordering guarantee.
	seq atomic.Uint64
}

// RemoteOption configures a Remote sink.
type RemoteOption func(*Remote)

// WithReportURL sets the report endpoint URL.
//
// Blank values are ignored (default is DefaultEndpointPath; callers normally
// provide an absolute URL).
func WithReportURL(u string) RemoteOption {
	return func(r *Remote) {
		u = strings.TrimSpace(u)
		if u != "" {
			r.url = u
		}
	}
}

// WithRemoteClient sets the HTTP client used for delivery.
//
// A nil client marks the transport as unavailable: every delivery returns
// immediately without attempting any request.
func WithRemoteClient(c *http.Client) RemoteOption {
	return func(r *Remote) { r.client = c }
}

// WithDiagnostics sets the source of the diagnostic blob attached to each
// report. Absent source (or an empty field list) sends a fixed placeholder.
func WithDiagnostics(src DiagnosticSource) RemoteOption {
	return func(r *Remote) { r.diag = src }
}

// WithUserAgent overrides the reported user-agent string.
func WithUserAgent(ua string) RemoteOption {
	return func(r *Remote) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// WithLocation overrides the reported origin location string.
func WithLocation(loc string) RemoteOption {
	return func(r *Remote) {
		if loc != "" {
			r.location = loc
		}
	}
}

// NewRemote returns a Remote sink with a fresh http.Client (no timeout)
// unless overridden.
func NewRemote(opts ...RemoteOption) *Remote {
	r := &Remote{
		url:       DefaultEndpointPath,
		client:    &http.Client{},
		userAgent: defaultUserAgent(),
		location:  defaultLocation(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WriteMessage implements Sink. The delivery outcome is swallowed; use
// Deliver for per-attempt status.
func (r *Remote) WriteMessage(msg string) {
	_ = r.Deliver(msg)
}

// Deliver sends msg and reports how far delivery got.
//
// With no transport available (nil client) it returns immediately without
// attempting any request. Otherwise it makes the primary POST attempt and,
// if that fails, exactly one GET fallback.
func (r *Remote) Deliver(msg string) Result {
	if r.client == nil {
		return Result{Last: AttemptNone}
	}

	payload := r.encodePayload(msg)
	reportID := uuid.NewString()

	err := r.attempt(http.MethodPost, r.url, payload, reportID)
	if err == nil {
		return Result{Delivered: true, Last: AttemptPrimary}
	}

	err = r.attempt(http.MethodGet, r.url+"?"+payload, "", reportID)
	if err != nil {
		return Result{Last: AttemptFallback, Err: err}
	}
	return Result{Delivered: true, Last: AttemptFallback}
}

func (r *Remote) attempt(method, target, body, reportID string) error {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return fmt.Errorf("sink: build %s request: %w", method, err)
	}
	req.Header.Set(reportIDHeader, reportID)
	req.Header.Set("User-Agent", r.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("sink: %s report: %w", method, err)
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sink: %s report: unexpected status %d", method, resp.StatusCode)
	}
	return nil
}

// encodePayload builds the query-string-encoded report fields:
// m (message), ua (user agent), ur (origin location), ex (diagnostic blob),
// _ (cache-buster: unix millis + per-instance counter).
func (r *Remote) encodePayload(msg string) string {
	v := url.Values{}
	v.Set("m", msg)
	v.Set("ua", r.userAgent)
	v.Set("ur", r.location)
	v.Set("ex", renderDiagnostics(r.diag))
	// Delimited so distinct (time, seq) pairs can never render identically.
	v.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10)+"-"+strconv.FormatUint(r.seq.Add(1), 10))
	return v.Encode()
}

func defaultUserAgent() string {
	return fmt.Sprintf("watchmen (%s; %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func defaultLocation() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown-host"
	}
	exe := "unknown-process"
	if len(os.Args) > 0 && os.Args[0] != "" {
		exe = os.Args[0]
	}
	return host + ":" + exe
}
