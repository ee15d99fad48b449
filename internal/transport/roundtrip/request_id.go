package roundtrip

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cinefluent/pkg/ctxutil"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-Id"

// RequestID stamps each outgoing request with X-Request-Id. The ID comes from
// the context when the caller set one, otherwise a new UUID is used. The ID is
// also stored in the request context for the Logger.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return Func(func(r *http.Request) (*http.Response, error) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = ctxutil.RequestIDFromCtx(r.Context())
		}
		if id == "" {
			id = uuid.New().String()
		}

		out := clone(r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		out.Header.Set(HeaderRequestID, id)
		return next.RoundTrip(out)
	})
}
