package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// Register validates the form (name, then email, then password) and creates
// an account. The name is sent trimmed.
func (c *Controller) Register(ctx context.Context, email, password, name string) error {
	prev, err := c.begin()
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		fe := fieldError(domain.FieldName, MsgNameRequired)
		c.finish(prev, c.currentUser(), fe)
		return fe
	}
	if fe := validateCredentials(email, password); fe != nil {
		c.finish(prev, c.currentUser(), fe)
		return fe
	}

	res, err := c.api.Register(ctx, email, password, name)
	if err != nil {
		fe := classifyRegister(err)
		c.log.InfoContext(ctx, "registration failed", slog.String("error", err.Error()))
		c.finish(StateAnonymous, nil, fe)
		return fe
	}

	c.finish(StateAuthenticated, &res.User, nil)
	c.log.InfoContext(ctx, "user registered", slog.String("user_id", res.User.ID))
	return nil
}
