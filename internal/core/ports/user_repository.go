package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Store[domain.User, domain.UserPatch]
	// List returns one page of users ordered by username.
	List(ctx context.Context, page domain.PageInfo) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
