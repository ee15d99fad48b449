package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cinefluent/internal/transport/roundtrip"
	"github.com/heartmarshall/cinefluent/pkg/ctxutil"
)

// RequestID echoes the client's X-Request-Id, or assigns one, and stores it
// in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(roundtrip.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(roundtrip.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
