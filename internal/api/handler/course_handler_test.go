package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

func TestCourseHandler_List(t *testing.T) {
	stub := &stubCourseService{
		listFn: func(context.Context) ([]*domain.Course, error) {
			return []*domain.Course{{ID: "c1", Name: "Go", Content: []string{"a"}, Tools: []string{}}}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/courses", "")

	if err := NewCourseHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []courseView
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCourseHandler_Create(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(_ context.Context, in ports.CreateCourseInput) (string, error) {
			if in.Name != "Go" || len(in.Content) != 2 || len(in.Tools) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "c1", nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/courses",
		`{"name":"Go","description":"intro","content":["a","b"],"tools":["vim"]}`)

	if err := NewCourseHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp idResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.ID != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCourseHandler_Create_EmptyContent(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(context.Context, ports.CreateCourseInput) (string, error) {
			t.Fatal("service must not be called")
			return "", nil
		},
	}
	c, _ := newTestContext(http.MethodPost, "/courses", `{"name":"Go","description":"intro","content":[]}`)

	if err := NewCourseHandler(stub).Create(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCourseHandler_Update_PassesOnlySuppliedFields(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(_ context.Context, id string, p domain.CoursePatch) (*domain.Course, error) {
			if id != "c1" || p.Name != nil || p.Tools == nil || len(*p.Tools) != 0 {
				t.Fatalf("unexpected patch for %s: %+v", id, p)
			}
			return &domain.Course{ID: id}, nil
		},
	}
	c, rec := newTestContext(http.MethodPut, "/courses/c1", `{"tools":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := NewCourseHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCourseHandler_GetAndDelete_NotFound(t *testing.T) {
	stub := &stubCourseService{
		getFn:    func(context.Context, string) (*domain.Course, error) { return nil, domain.NotFound(domain.ResourceCourse) },
		deleteFn: func(context.Context, string) error { return domain.NotFound(domain.ResourceCourse) },
	}
	h := NewCourseHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/courses/nope", "")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodDelete, "/courses/nope", "")
	if err := h.Delete(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestCourseHandler_Delete(t *testing.T) {
	stub := &stubCourseService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	c, rec := newTestContext(http.MethodDelete, "/courses/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := NewCourseHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "{\"success\":true}\n" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
