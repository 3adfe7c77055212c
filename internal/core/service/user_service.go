package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// UserService implements registration, login and account maintenance.
type UserService struct {
	users  *Resource[domain.User, domain.UserPatch]
	repo   ports.UserRepository
	tokens TokenIssuer
	cost   int
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, reserver ports.KeyReserver, tokens TokenIssuer, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:  NewResource(domain.ResourceUser, ports.Store[domain.User, domain.UserPatch](repo), reserver, log),
		repo:   repo,
		tokens: tokens,
		cost:   bcryptCost,
		log:    log,
	}
}

// Register creates an active account with the user role.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	required := []struct{ field, value string }{
		{"firstname", in.Firstname},
		{"lastname", in.Lastname},
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.Invalid(r.field, r.field+" is required")
		}
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login verifies the password of the account identified by username (or
// email when no username is given) and returns a signed access token.
func (s *UserService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.User, error) {
	key := domain.Key{Field: "username", Value: in.Username}
	if in.Username == "" {
		if in.Email == "" {
			return "", nil, domain.Invalid("", "please provide a username or email")
		}
		key = domain.Key{Field: "email", Value: in.Email}
	}
	if in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Status == domain.StatusDisabled {
		return "", nil, &domain.ResourceError{Kind: domain.ErrForbidden, Detail: "account is disabled"}
	}

	tkn, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return tkn, user, nil
}

// Update applies a partial update. Callers may update themselves; admins may
// update anyone and are the only ones allowed to change role or status.
func (s *UserService) Update(ctx context.Context, caller domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !caller.CanActOn(id) {
		return nil, domain.ErrForbidden
	}

	patch := domain.UserPatch{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Username:  in.Username,
		Email:     in.Email,
		Role:      in.Role,
		Status:    in.Status,
	}
	if patch.Privileged() && !caller.IsAdmin() {
		return nil, &domain.ResourceError{Kind: domain.ErrForbidden, Detail: "only an admin can change role or status"}
	}

	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, domain.Invalid("password", "password must not be empty")
		}
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	return s.users.Update(ctx, id, patch)
}

// Get returns a user to itself or to an admin.
func (s *UserService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.User, error) {
	if !caller.CanActOn(id) {
		return nil, domain.ErrForbidden
	}
	return s.users.Get(ctx, id)
}

// List returns one page of users ordered by username.
func (s *UserService) List(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	if err := domain.ValidatePaging(page, limit); err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	info := domain.NewPageInfo(page, limit, total)
	if !info.Exists() {
		return nil, domain.PageNotFound()
	}

	users, err := s.repo.List(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &ports.UserPage{Items: users, Page: info}, nil
}

func (s *UserService) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
