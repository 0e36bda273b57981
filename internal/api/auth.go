package api

import (
	"context"
	"net/http"

	apperrors "spendview/internal/errors"
	"spendview/internal/models"
)

// LoginResponse is the token payload returned by the login exchange.
type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}

// Login exchanges credentials for a bearer token. A rejection carries the
// backend's message verbatim; the backend never says which field was wrong.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/access-token", "", creds, &out, apperrors.ErrLoginFailed, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. Self-registration carries no auth header.
func (c *Client) Register(ctx context.Context, reg models.UserRegister) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/users/registeruser", "", reg, &out, apperrors.ErrRegistration, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}
