// Package rest serves the CineFluent REST API from a request resolver. It
// backs the in-process fake backend that client tests run against.
package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/domain"
	"github.com/heartmarshall/cinefluent/internal/transport/middleware"
)

const maxBodyBytes = 1 << 20

// resolver answers API requests.
type resolver interface {
	Resolve(ctx context.Context, req mockdata.Request) (any, error)
}

// route is one endpoint, relative to the API prefix.
type route struct {
	method string
	path   string
	auth   bool
}

var routes = []route{
	{http.MethodPost, "/auth/login", false},
	{http.MethodPost, "/auth/register", false},
	{http.MethodPost, "/auth/logout", false},
	{http.MethodGet, "/user/me", true},
	{http.MethodGet, "/user/languages", true},
	{http.MethodGet, "/user/stats", true},
	{http.MethodGet, "/movies", false},
	{http.MethodGet, "/movies/{id}", false},
	{http.MethodGet, "/movies/{id}/lessons", false},
	{http.MethodGet, "/lessons/{id}", false},
	{http.MethodPost, "/progress", true},
	{http.MethodGet, "/progress", true},
	{http.MethodGet, "/progress/weekly", true},
	{http.MethodGet, "/achievements", true},
	{http.MethodGet, "/community/posts", false},
	{http.MethodPost, "/community/posts", true},
	{http.MethodGet, "/community/leaderboard", false},
}

// APIHandler serves API endpoints.
type APIHandler struct {
	res    resolver
	prefix string
	log    *slog.Logger
}

// NewAPIHandler creates an APIHandler for endpoints under prefix.
func NewAPIHandler(res resolver, prefix string, logger *slog.Logger) *APIHandler {
	return &APIHandler{res: res, prefix: prefix, log: logger.With("handler", "api")}
}

// Register adds every endpoint to mux. Endpoints that need a signed-in user
// are wrapped with middleware.RequireUser.
func (h *APIHandler) Register(mux *http.ServeMux) {
	for _, rt := range routes {
		var handler http.Handler = http.HandlerFunc(h.serve)
		if rt.auth {
			handler = middleware.RequireUser(handler)
		}
		mux.Handle(rt.method+" "+h.prefix+rt.path, handler)
	}
	mux.HandleFunc(h.prefix+"/", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
}

func (h *APIHandler) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		middleware.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.res.Resolve(r.Context(), mockdata.Request{
		Method: r.Method,
		Path:   strings.TrimPrefix(r.URL.Path, h.prefix),
		Query:  r.URL.Query(),
		Body:   body,
		Token:  extractBearer(r),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, v)
}

// handleError maps domain errors to HTTP status codes.
func (h *APIHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		middleware.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		middleware.WriteDetail(w, http.StatusUnauthorized, detail(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrAlreadyExists):
		middleware.WriteDetail(w, http.StatusBadRequest, detail(err, domain.ErrAlreadyExists))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMockUnavailable):
		middleware.WriteDetail(w, http.StatusNotFound, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "unhandled error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		middleware.WriteDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// detail strips the sentinel prefix from "sentinel: message" errors.
func detail(err, sentinel error) string {
	msg := err.Error()
	if d, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return d
	}
	return msg
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
