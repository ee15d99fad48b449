package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// begin claims the in-flight slot. It fails with domain.ErrBusy while
// another login or registration is running.
func (c *Controller) begin() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateAuthenticating {
		return c.state, domain.ErrBusy
	}
	prev := c.state
	c.state = StateAuthenticating
	c.err = nil
	return prev, nil
}

// Login validates the form and signs in. Validation failures set a
// field-scoped error and make no network call. The returned error is a
// *FormError, or domain.ErrBusy.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	prev, err := c.begin()
	if err != nil {
		return err
	}

	if fe := validateCredentials(email, password); fe != nil {
		c.finish(prev, c.currentUser(), fe)
		return fe
	}

	res, err := c.api.Login(ctx, email, password)
	if err != nil {
		fe := classifyLogin(err)
		c.log.InfoContext(ctx, "login failed", slog.String("error", err.Error()))
		c.finish(StateAnonymous, nil, fe)
		return fe
	}

	c.finish(StateAuthenticated, &res.User, nil)
	c.log.InfoContext(ctx, "user logged in", slog.String("user_id", res.User.ID))
	return nil
}

func (c *Controller) currentUser() *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}
