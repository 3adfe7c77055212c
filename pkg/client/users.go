package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Register creates an account and returns its id.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	err := c.do(ctx, call{method: http.MethodPost, path: "/users/register", body: req, public: true}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// Login authenticates and stores the returned access token for later calls.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*User, error) {
	var out struct {
		User        User   `json:"user"`
		AccessToken string `json:"accessToken"`
	}
	err := c.do(ctx, call{method: http.MethodPost, path: "/users/login", body: req, public: true}, &out)
	if err != nil {
		return nil, err
	}
	c.setToken(out.AccessToken)
	return &out.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := c.do(ctx, call{method: http.MethodPut, path: "/users/update/" + url.PathEscape(id), body: upd}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, call{method: http.MethodGet, path: "/users/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListUsers returns one page of users. Admin only.
func (c *Client) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out UserPage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/users", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
