// Package roundtrip provides http.RoundTripper middleware for the API client:
// request IDs, bearer auth and request logging.
package roundtrip

import "net/http"

// Middleware wraps an http.RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Func adapts an ordinary function to http.RoundTripper.
type Func func(*http.Request) (*http.Response, error)

func (f Func) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Chain wraps base with mws. Chain(base, mw1, mw2) results in
// mw1(mw2(base)), so mw1 sees the request first.
// A nil base means http.DefaultTransport.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// clone copies r so headers can be set without touching the caller's request.
func clone(r *http.Request) *http.Request {
	return r.Clone(r.Context())
}
