// ABOUTME: Authentication endpoints for the TrocaMat API client
// ABOUTME: Persists the auth token on successful login or registration

package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login calls POST /auth/login/ and persists the returned token
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login/", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.tokens.Set(resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Register calls POST /auth/register/.
// The backend may or may not issue a token on registration; when it does,
// the token is persisted the same way login persists it.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register/", input, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.tokens.Set(resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Logout clears the persisted token. There is no backend call; the
// token is simply forgotten client-side.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// CurrentUser calls GET /users/me/
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// HasToken reports whether a persisted auth token is present
func (c *Client) HasToken() bool {
	_, ok := c.tokens.Get()
	return ok
}
