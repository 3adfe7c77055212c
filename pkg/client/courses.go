package client

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var out []Course
	if err := c.do(ctx, call{method: http.MethodGet, path: "/courses"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCourse(ctx context.Context, id string) (*Course, error) {
	var out Course
	if err := c.do(ctx, call{method: http.MethodGet, path: "/courses/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourse returns the id of the new course.
func (c *Client) CreateCourse(ctx context.Context, in CourseInput) (string, error) {
	var out idResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/courses", body: in}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, upd CourseUpdate) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/courses/" + url.PathEscape(id), body: upd}, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/courses/" + url.PathEscape(id)}, nil)
}
