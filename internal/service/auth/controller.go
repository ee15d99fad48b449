// Package auth owns the client-side authentication state machine: restoring
// a session at startup, the login and registration forms, and logout.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// State is the authentication state of the client.
type State int

const (
	StateInitializing State = iota
	StateAnonymous
	StateAuthenticated
	StateAuthenticating
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateAuthenticating:
		return "authenticating"
	}
	return "unknown"
}

// Mode is the form the user is looking at.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// apiClient defines the backend operations needed by the controller.
type apiClient interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	Register(ctx context.Context, email, password, name string) (domain.AuthResult, error)
	Logout(ctx context.Context)
	GetCurrentUser(ctx context.Context) (domain.User, error)
}

// sessionStore defines the session operations needed by the controller.
type sessionStore interface {
	Restore(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
	OnClear(fn func())
}

// Snapshot is a consistent view of the controller for rendering.
type Snapshot struct {
	State State
	Mode  Mode
	User  *domain.User
	Error *FormError
}

// Authenticated reports whether a user is signed in.
func (s Snapshot) Authenticated() bool { return s.State == StateAuthenticated && s.User != nil }

// Loading reports whether the form should show a spinner.
func (s Snapshot) Loading() bool {
	return s.State == StateInitializing || s.State == StateAuthenticating
}

// Controller is safe for concurrent use.
type Controller struct {
	log     *slog.Logger
	api     apiClient
	session sessionStore
	now     func() time.Time

	mu    sync.RWMutex
	state State
	mode  Mode
	user  *domain.User
	err   *FormError
}

// NewController creates a controller in the Initializing state. It follows
// the session: when the session is cleared underneath a signed-in user, the
// controller moves to Anonymous with a session-expired error.
func NewController(logger *slog.Logger, api apiClient, session sessionStore) *Controller {
	c := &Controller{
		log:     logger.With("service", "auth"),
		api:     api,
		session: session,
		now:     time.Now,
		state:   StateInitializing,
	}
	session.OnClear(c.sessionCleared)
	return c
}

func (c *Controller) sessionCleared() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return
	}
	c.state = StateAnonymous
	c.user = nil
	c.err = &FormError{Message: MsgSessionExpired, Err: domain.ErrUnauthorized}
	c.log.Info("session rejected, signed out")
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{State: c.state, Mode: c.mode}
	if c.user != nil {
		u := *c.user
		s.User = &u
	}
	if c.err != nil {
		e := *c.err
		s.Error = &e
	}
	return s
}

// SwitchMode flips between the login and registration forms and clears
// any error.
func (c *Controller) SwitchMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.err = nil
	c.mu.Unlock()
}

// FieldChanged is called when the user edits a form field. It clears the
// current error.
func (c *Controller) FieldChanged(field string) {
	c.ClearError()
}

func (c *Controller) ClearError() {
	c.mu.Lock()
	c.err = nil
	c.mu.Unlock()
}

func (c *Controller) setError(fe *FormError) {
	c.mu.Lock()
	c.err = fe
	c.mu.Unlock()
}
