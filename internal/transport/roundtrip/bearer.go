package roundtrip

import "net/http"

// TokenSource returns the current bearer token, or "" when signed out.
type TokenSource interface {
	Token() string
}

// Bearer sets Authorization: Bearer <token> when src has a token and the
// request does not already carry an Authorization header.
func Bearer(src TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			token := src.Token()
			if token == "" || r.Header.Get("Authorization") != "" {
				return next.RoundTrip(r)
			}
			out := clone(r)
			out.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(out)
		})
	}
}
