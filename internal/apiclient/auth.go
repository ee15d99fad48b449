package apiclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login authenticates and starts a session. The token is persisted.
func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	var res domain.AuthResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: email, Password: password},
	}, &res)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("apiclient.Login: %w", err)
	}

	c.begin(ctx, res)
	return res, nil
}

// Register creates an account and starts a session. The token is persisted.
func (c *Client) Register(ctx context.Context, email, password, name string) (domain.AuthResult, error) {
	var res domain.AuthResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   registerRequest{Email: email, Password: password, Name: name},
	}, &res)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("apiclient.Register: %w", err)
	}

	c.begin(ctx, res)
	return res, nil
}

func (c *Client) begin(ctx context.Context, res domain.AuthResult) {
	if err := c.session.Begin(ctx, res); err != nil {
		c.log.WarnContext(ctx, "failed to persist session token", slog.String("error", err.Error()))
	}
}

// Logout notifies the server best-effort and always clears the session,
// in memory and on disk.
func (c *Client) Logout(ctx context.Context) {
	if c.session.Token() != "" {
		if err := c.once(ctx, call{method: http.MethodPost, path: "/auth/logout"}); err != nil {
			c.log.WarnContext(ctx, "logout request failed", slog.String("error", err.Error()))
		}
	}
	_ = c.session.Clear(ctx)
}

// GetCurrentUser fetches the user behind the current token. Failures fall
// back to offline data, except an authentication failure, which is returned.
func (c *Client) GetCurrentUser(ctx context.Context) (domain.User, error) {
	u, err := read[domain.User](ctx, c, call{method: http.MethodGet, path: "/user/me"})
	if err != nil {
		return domain.User{}, fmt.Errorf("apiclient.GetCurrentUser: %w", err)
	}
	c.session.SetUser(u)
	return u, nil
}

// surfaced reports errors a read must return instead of masking with offline data.
func surfaced(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
