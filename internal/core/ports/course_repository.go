package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Store[domain.Course, domain.CoursePatch]
	// List returns every course ordered by name.
	List(ctx context.Context) ([]*domain.Course, error)
}
