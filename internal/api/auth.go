// ABOUTME: Auth endpoints: register, login, refresh, me, change-password.
// ABOUTME: Register and login are the only unauthenticated calls besides health.
package api

import (
	"context"
	"net/http"

	"github.com/harperreed/fittrack/internal/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Register creates a new account and returns a fresh session.
func (c *Client) Register(ctx context.Context, email, password, name string) (*models.AuthResult, error) {
	var wire authResultWire
	body := registerRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, false, &wire); err != nil {
		return nil, err
	}
	result := authResultFromWire(wire)
	return &result, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var wire authResultWire
	body := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, false, &wire); err != nil {
		return nil, err
	}
	result := authResultFromWire(wire)
	return &result, nil
}

// Refresh exchanges the current token for a fresh one. Requires a token to
// already be set; failure means the session is no longer valid.
func (c *Client) Refresh(ctx context.Context) (*models.AuthResult, error) {
	var wire authResultWire
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", nil, true, &wire); err != nil {
		return nil, err
	}
	result := authResultFromWire(wire)
	return &result, nil
}

// Me returns the authenticated user for the current token.
func (c *Client) Me(ctx context.Context) (*models.AuthUser, error) {
	var wire authUserWire
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, true, &wire); err != nil {
		return nil, err
	}
	user := authUserFromWire(wire)
	return &user, nil
}

// ChangePassword updates the account password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", body, true, nil)
}
