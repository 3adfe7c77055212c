package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

type CourseService struct {
	courses *Resource[domain.Course, domain.CoursePatch]
	repo    ports.CourseRepository
	logger  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, reserver ports.KeyReserver, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courses: NewResource(domain.ResourceCourse, ports.Store[domain.Course, domain.CoursePatch](repo), reserver, logger),
		repo:    repo,
		logger:  logger,
	}
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.Get(ctx, id)
}

// Create stores a new course. Name, description and at least one content
// entry are required; tools are optional.
func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (string, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "", domain.Invalid("name", "name is required")
	case strings.TrimSpace(in.Description) == "":
		return "", domain.Invalid("description", "description is required")
	case len(in.Content) == 0:
		return "", domain.Invalid("content", "content is required")
	}

	tools := in.Tools
	if tools == nil {
		tools = []string{}
	}

	return s.courses.Create(ctx, &domain.Course{
		Name:        in.Name,
		Description: in.Description,
		Content:     in.Content,
		Tools:       tools,
	})
}

func (s *CourseService) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	return s.courses.Update(ctx, id, patch)
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.courses.Delete(ctx, id)
}
