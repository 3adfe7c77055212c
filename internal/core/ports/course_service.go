package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// CreateCourseInput carries the fields of a new course.
type CreateCourseInput struct {
	Name        string
	Description string
	Content     []string
	Tools       []string
}

type CourseService interface {
	List(ctx context.Context) ([]*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, in CreateCourseInput) (string, error)
	Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
