package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListImages returns one page of images, by default those owned by the caller.
func (c *Client) ListImages(ctx context.Context, q ImageQuery) (*ImagePage, error) {
	var out ImagePage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/images", query: q.values()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetImage(ctx context.Context, id string) (*Image, error) {
	var out Image
	if err := c.do(ctx, call{method: http.MethodGet, path: "/images/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateImage stores an image owned by the logged-in user and returns its id.
func (c *Client) CreateImage(ctx context.Context, in ImageInput) (string, error) {
	var out idResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/images", body: in}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateImage(ctx context.Context, id string, upd ImageUpdate) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/images/" + url.PathEscape(id), body: upd}, nil)
}

func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/images/" + url.PathEscape(id)}, nil)
}

func (q ImageQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("sort", q.Sort)
	set("order", q.Order)
	set("select", strings.Join(q.Select, ","))
	set("search", q.Search)
	set("user", q.User)
	return v
}
