package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umd-esiea/umd-api/internal/api/middleware"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withIdentity(c echo.Context, id, role string) {
	c.Set(middleware.ContextUserID, id)
	c.Set(middleware.ContextRole, role)
}

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, in ports.LoginInput) (string, *domain.User, error)
	updateFn   func(ctx context.Context, caller domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error)
	getFn      func(ctx context.Context, caller domain.Identity, id string) (*domain.User, error)
	listFn     func(ctx context.Context, page, limit int) (*ports.UserPage, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.User, error) {
	return s.loginFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, caller domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, caller, id, in)
}

func (s *stubUserService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.User, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubUserService) List(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	return s.listFn(ctx, page, limit)
}

type stubCourseService struct {
	listFn   func(ctx context.Context) ([]*domain.Course, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, error)
	createFn func(ctx context.Context, in ports.CreateCourseInput) (string, error)
	updateFn func(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.listFn(ctx)
}

func (s *stubCourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) Create(ctx context.Context, in ports.CreateCourseInput) (string, error) {
	return s.createFn(ctx, in)
}

func (s *stubCourseService) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubCourseService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubImageService struct {
	listFn   func(ctx context.Context, caller domain.Identity, in ports.ListImagesInput) (*ports.ImagePage, error)
	getFn    func(ctx context.Context, id string) (*domain.Image, error)
	createFn func(ctx context.Context, caller domain.Identity, in ports.CreateImageInput) (string, error)
	updateFn func(ctx context.Context, id string, patch domain.ImagePatch) (*domain.Image, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubImageService) List(ctx context.Context, caller domain.Identity, in ports.ListImagesInput) (*ports.ImagePage, error) {
	return s.listFn(ctx, caller, in)
}

func (s *stubImageService) Get(ctx context.Context, id string) (*domain.Image, error) {
	return s.getFn(ctx, id)
}

func (s *stubImageService) Create(ctx context.Context, caller domain.Identity, in ports.CreateImageInput) (string, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubImageService) Update(ctx context.Context, id string, patch domain.ImagePatch) (*domain.Image, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubImageService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
