package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/cinefluent/internal/auth"
	"github.com/heartmarshall/cinefluent/internal/domain"
)

// Init restores a persisted session. With a stored token the current user is
// fetched; any failure discards the token and leaves the controller Anonymous
// with a session-expired error. A JWT whose exp has passed fails without a
// network call.
func (c *Controller) Init(ctx context.Context) Snapshot {
	token, err := c.session.Restore(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "failed to restore session", slog.String("error", err.Error()))
	}

	if token == "" {
		c.finish(StateAnonymous, nil, nil)
		return c.Snapshot()
	}

	claims, err := auth.ParseClaims(token)
	if err != nil && !errors.Is(err, auth.ErrNotJWT) {
		c.log.DebugContext(ctx, "stored token unreadable", slog.String("error", err.Error()))
	}
	if err == nil && claims.Expired(c.now()) {
		c.log.InfoContext(ctx, "stored session expired", slog.Time("expired_at", claims.ExpiresAt))
		c.expire(ctx)
		return c.Snapshot()
	}

	user, err := c.api.GetCurrentUser(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "failed to fetch user for stored session", slog.String("error", err.Error()))
		c.expire(ctx)
		return c.Snapshot()
	}

	c.finish(StateAuthenticated, &user, nil)
	c.log.InfoContext(ctx, "session restored", slog.String("user_id", user.ID))
	return c.Snapshot()
}

func (c *Controller) expire(ctx context.Context) {
	_ = c.session.Clear(ctx)
	c.finish(StateAnonymous, nil, &FormError{Message: MsgSessionExpired})
}

// finish moves to a settled state.
func (c *Controller) finish(state State, user *domain.User, fe *FormError) {
	c.mu.Lock()
	c.state = state
	c.user = user
	c.err = fe
	c.mu.Unlock()
}
