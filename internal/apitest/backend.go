// Package apitest runs a fake CineFluent API over the mock catalog. It signs
// real JWTs, counts requests and can inject failures, so client code can be
// exercised end to end against a real HTTP server.
package apitest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/apiclient"
	"github.com/heartmarshall/cinefluent/internal/auth"
	"github.com/heartmarshall/cinefluent/internal/transport/middleware"
	"github.com/heartmarshall/cinefluent/internal/transport/rest"
	"github.com/heartmarshall/cinefluent/internal/transport/roundtrip"
)

// Defaults for New.
const (
	DefaultSecret = "apitest-signing-secret-0123456789abcdef"
	Issuer        = "cinefluent-apitest"
)

// Fault is an injected failure for one endpoint.
type Fault struct {
	// Status is written with Detail as the JSON body. Ignored when Drop is set.
	Status int
	Detail string
	// Drop closes the connection without a response, which the client sees
	// as a transport error.
	Drop bool
	// Times limits how many requests fail; zero means every request.
	Times int
}

// Hit is a request the backend received.
type Hit struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

// Options configures a Backend.
type Options struct {
	Logger   *slog.Logger
	Secret   string
	TokenTTL time.Duration
}

// Backend is the fake API. It is safe for concurrent use.
type Backend struct {
	Tokens *auth.TokenIssuer
	Mock   *mockdata.Provider

	handler http.Handler

	mu     sync.Mutex
	hits   []Hit
	faults map[string]*Fault
}

// New creates a Backend serving the API under apiclient.APIPrefix.
func New(opts Options) (*Backend, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Secret == "" {
		opts.Secret = DefaultSecret
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}

	tokens := auth.NewTokenIssuer(opts.Secret, Issuer, opts.TokenTTL)
	mock, err := mockdata.New(logger, tokens, 0)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		Tokens: tokens,
		Mock:   mock,
		faults: make(map[string]*Fault),
	}
	b.handler = middleware.Chain(b.record, b.inject)(
		rest.NewRouter(logger.With("component", "apitest"), mock, tokens, apiclient.APIPrefix, "apitest"),
	)
	return b, nil
}

// ServeHTTP implements http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.handler.ServeHTTP(w, r)
}

// Start serves the backend on a local listener. Close the returned server
// when done.
func (b *Backend) Start() *httptest.Server {
	return httptest.NewServer(b)
}

// Fail injects f for method and path. Path is relative to the API prefix,
// e.g. "/movies".
func (b *Backend) Fail(method, path string, f Fault) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults[key(method, apiclient.APIPrefix+path)] = &f
}

// Heal removes all injected faults.
func (b *Backend) Heal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.faults)
}

// Hits returns every request received, in order.
func (b *Backend) Hits() []Hit {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Hit, len(b.hits))
	copy(out, b.hits)
	return out
}

// Count returns how many requests hit method and path (relative to the API
// prefix).
func (b *Backend) Count(method, path string) int {
	full := apiclient.APIPrefix + path
	n := 0
	for _, h := range b.Hits() {
		if h.Method == method && h.Path == full {
			n++
		}
	}
	return n
}

// Reset forgets recorded hits.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hits = nil
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits = append(b.hits, Hit{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(roundtrip.HeaderRequestID),
		})
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := b.take(key(r.Method, r.URL.Path))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if f.Drop {
			conn, _, err := http.NewResponseController(w).Hijack()
			if err == nil {
				conn.Close()
				return
			}
			f.Status = http.StatusBadGateway
		}
		middleware.WriteDetail(w, f.Status, f.Detail)
	})
}

// take returns the fault for k and consumes one use of it.
func (b *Backend) take(k string) (Fault, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.faults[k]
	if !ok {
		return Fault{}, false
	}
	out := *f
	if f.Times > 0 {
		if f.Times--; f.Times == 0 {
			delete(b.faults, k)
		}
	}
	return out, true
}

func key(method, path string) string { return method + " " + path }
