package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cinefluent/internal/transport/middleware"
)

// tokenValidator resolves a bearer token to a user ID.
type tokenValidator interface {
	Validate(token string) (string, error)
}

// NewRouter builds the full handler: health, the API under prefix, and the
// middleware stack (recovery, request id, logging, bearer auth).
func NewRouter(logger *slog.Logger, res resolver, tokens tokenValidator, prefix, version string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", NewHealthHandler(version).Live)
	NewAPIHandler(res, prefix, logger).Register(mux)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Auth(tokens),
	)(mux)
}
