package sink

import "net/http"

// TransportMiddleware wraps an http.RoundTripper, e.g. to stamp auth headers
// on outgoing reports or to observe delivery attempts.
type TransportMiddleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// ChainTransport applies middlewares to base and returns the wrapped
// RoundTripper.
//
// Order: ChainTransport(base, a, b, c) returns a(b(c(base))).
// Nil middlewares are ignored. A nil base uses an independent transport
// cloned from http.DefaultTransport so reports never share state with the
// host's default client.
func ChainTransport(base http.RoundTripper, mws ...TransportMiddleware) http.RoundTripper {
	if base == nil {
		base = cloneDefaultTransport()
	}
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		base = mws[i](base)
	}
	return base
}

func cloneDefaultTransport() http.RoundTripper {
	if t, ok := http.DefaultTransport.(*http.Transport); ok && t != nil {
		return t.Clone()
	}
	return http.DefaultTransport
}

// WithTransportMiddleware wraps the remote sink's transport with mws.
//
// It composes with whatever client is configured (including the default),
// so order it after WithRemoteClient. With a nil client (transport
// unavailable) it has no effect.
func WithTransportMiddleware(mws ...TransportMiddleware) RemoteOption {
	return func(r *Remote) {
		if r.client == nil || len(mws) == 0 {
			return
		}
		c := *r.client
		c.Transport = ChainTransport(c.Transport, mws...)
		r.client = &c
	}
}
