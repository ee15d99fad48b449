package auth

import "context"

// Logout notifies the server best-effort and always ends Anonymous with
// user and error cleared.
func (c *Controller) Logout(ctx context.Context) {
	c.finish(StateAnonymous, nil, nil)
	c.api.Logout(ctx)
	c.log.InfoContext(ctx, "user logged out")
}
