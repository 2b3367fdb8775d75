package api

import (
	"context"
	"net/http"

	"github.com/nordblog/console/internal/core/domain"
)

// mePayload is the introspection envelope: { "user": { ... } }.
type mePayload struct {
	User domain.Identity `json:"user"`
}

// Me calls GET /auth/me. The identity is non-nil exactly when the session is
// recognised.
func (c *Client) Me(ctx context.Context) (*domain.Identity, domain.CallResult) {
	var payload mePayload
	res := c.do(ctx, "auth_me", http.MethodGet, "/auth/me", nil, &payload)
	if !res.OK() {
		return nil, res
	}
	return &payload.User, res
}

// Login calls POST /auth/login. The response body is ignored; identity is
// derived from the introspection endpoint afterwards.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) domain.CallResult {
	return c.do(ctx, "auth_login", http.MethodPost, "/auth/login", creds, nil)
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) domain.CallResult {
	return c.do(ctx, "auth_register", http.MethodPost, "/auth/register", creds, nil)
}

// Logout calls POST /auth/logout.
func (c *Client) Logout(ctx context.Context) domain.CallResult {
	return c.do(ctx, "auth_logout", http.MethodPost, "/auth/logout", nil, nil)
}
