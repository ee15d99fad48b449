// Package session holds the single client session: the signed-in user and
// the bearer token, mirrored to durable storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/domain"
)

type tokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Session is safe for concurrent use. Only the auth flow and the 401 handler
// mutate it; everything else reads the token.
type Session struct {
	mu    sync.RWMutex
	user  *domain.User
	token string

	store tokenStore
	log   *slog.Logger

	hooksMu sync.Mutex
	onClear []func()
}

// New creates an empty session backed by store.
func New(logger *slog.Logger, store tokenStore) *Session {
	return &Session{
		store: store,
		log:   logger.With("component", "session"),
	}
}

// Restore loads a previously persisted token into memory and returns it.
// An absent token is not an error.
func (s *Session) Restore(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, localstore.KeyAuthToken)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("session.Restore: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return token, nil
}

// Begin installs a freshly authenticated user and token and persists the token.
// The in-memory session is updated even if persisting fails.
func (s *Session) Begin(ctx context.Context, res domain.AuthResult) error {
	u := res.User

	s.mu.Lock()
	s.user = &u
	s.token = res.Token
	s.mu.Unlock()

	if err := s.store.Set(ctx, localstore.KeyAuthToken, res.Token); err != nil {
		return fmt.Errorf("session.Begin: persist token: %w", err)
	}
	return nil
}

// SetUser records the user resolved for the current token.
func (s *Session) SetUser(u domain.User) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// OnClear registers fn to run after every Clear, including the one the
// client performs when the server rejects the token.
func (s *Session) OnClear(fn func()) {
	s.hooksMu.Lock()
	s.onClear = append(s.onClear, fn)
	s.hooksMu.Unlock()
}

// Clear drops the user and token from memory and storage, then runs the
// OnClear hooks. Memory is always cleared; a storage failure is logged and
// returned.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.hooksMu.Lock()
	hooks := slices.Clone(s.onClear)
	s.hooksMu.Unlock()
	for _, fn := range hooks {
		fn()
	}

	if err := s.store.Delete(ctx, localstore.KeyAuthToken); err != nil {
		s.log.WarnContext(ctx, "failed to delete persisted token", slog.String("error", err.Error()))
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, if any.
func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether both a user and a token are present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}
