package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Username  string
	Email     string
	Password  string
}

// LoginInput identifies the account by username or, failing that, email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput is a partial update. Nil fields are left untouched; a
// password is hashed before it reaches the store.
type UpdateUserInput struct {
	Firstname *string
	Lastname  *string
	Username  *string
	Email     *string
	Password  *string
	Role      *string
	Status    *string
}

// UserPage is one page of users.
type UserPage struct {
	Items []*domain.User
	Page  domain.PageInfo
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (string, *domain.User, error)
	Update(ctx context.Context, caller domain.Identity, id string, in UpdateUserInput) (*domain.User, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.User, error)
	List(ctx context.Context, page, limit int) (*UserPage, error)
}
