package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

func newTestUserService(store *userStore) *UserService {
	return NewUserService(store, nil, stubIssuer{}, bcrypt.MinCost, zerolog.Nop())
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Username:  username,
		Email:     email,
		Password:  "s3cret!",
	}
}

func TestUserService_Register(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)

	user, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.StatusActive, user.Status)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_RegisterDuplicates(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      ports.RegisterInput
		message string
	}{
		{"same username", registerInput("ada", "other@example.com"), `user with username "ada" already exists`},
		{"same email", registerInput("grace", "ada@example.com"), `user with email "ada@example.com" already exists`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			require.ErrorIs(t, err, domain.ErrConflict)
			assert.EqualError(t, err, tt.message)
		})
	}
	assert.Len(t, store.all(), 1)
}

func TestUserService_RegisterMissingField(t *testing.T) {
	svc := newTestUserService(newUserStore())

	in := registerInput("ada", "ada@example.com")
	in.Password = ""
	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserService_RegisterReportsFirstMissingField(t *testing.T) {
	svc := newTestUserService(newUserStore())

	for i := 0; i < 20; i++ {
		_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "ada"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, "firstname is required")
	}
}

func TestUserService_Login(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      ports.LoginInput
		wantErr error
	}{
		{"by username", ports.LoginInput{Username: "ada", Password: "s3cret!"}, nil},
		{"by email", ports.LoginInput{Email: "ada@example.com", Password: "s3cret!"}, nil},
		{"username wins over email", ports.LoginInput{Username: "ada", Email: "nobody@example.com", Password: "s3cret!"}, nil},
		{"wrong password", ports.LoginInput{Username: "ada", Password: "nope"}, domain.ErrInvalidCredentials},
		{"unknown user", ports.LoginInput{Username: "bob", Password: "s3cret!"}, domain.ErrInvalidCredentials},
		{"empty password", ports.LoginInput{Username: "ada"}, domain.ErrInvalidCredentials},
		{"no identifier", ports.LoginInput{Password: "s3cret!"}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkn, user, err := svc.Login(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, tkn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
			assert.Equal(t, "token-"+registered.ID+"-user", tkn)
		})
	}
}

func TestUserService_LoginDisabled(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)
	_, err = store.Update(ctx, user.ID, domain.UserPatch{Status: strPtr(domain.StatusDisabled)})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, ports.LoginInput{Username: "ada", Password: "s3cret!"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_LoginIssuerFailure(t *testing.T) {
	store := newUserStore()
	svc := NewUserService(store, nil, stubIssuer{err: errors.New("signing failed")}, bcrypt.MinCost, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, ports.LoginInput{Username: "ada", Password: "s3cret!"})
	assert.EqualError(t, err, "signing failed")
}

func TestUserService_Update(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	ada, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)
	grace, err := svc.Register(ctx, registerInput("grace", "grace@example.com"))
	require.NoError(t, err)

	self := domain.Identity{ID: ada.ID, Role: domain.RoleUser}
	admin := domain.Identity{ID: "admin", Role: domain.RoleAdmin}

	t.Run("self partial update", func(t *testing.T) {
		updated, err := svc.Update(ctx, self, ada.ID, ports.UpdateUserInput{Firstname: strPtr("Augusta")})
		require.NoError(t, err)
		assert.Equal(t, "Augusta", updated.Firstname)
		assert.Equal(t, "Lovelace", updated.Lastname)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.Update(ctx, self, grace.ID, ports.UpdateUserInput{Firstname: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("role change needs admin", func(t *testing.T) {
		_, err := svc.Update(ctx, self, ada.ID, ports.UpdateUserInput{Role: strPtr(domain.RoleAdmin)})
		assert.ErrorIs(t, err, domain.ErrForbidden)

		updated, err := svc.Update(ctx, admin, ada.ID, ports.UpdateUserInput{Role: strPtr(domain.RoleAdmin)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, updated.Role)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		updated, err := svc.Update(ctx, admin, grace.ID, ports.UpdateUserInput{Password: strPtr("n3w")})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("n3w")))
	})

	t.Run("email taken by another user", func(t *testing.T) {
		_, err := svc.Update(ctx, admin, grace.ID, ports.UpdateUserInput{Email: strPtr("ada@example.com")})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("empty update", func(t *testing.T) {
		_, err := svc.Update(ctx, self, ada.ID, ports.UpdateUserInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.Update(ctx, admin, "ghost", ports.UpdateUserInput{Firstname: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_Get(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	ada, err := svc.Register(ctx, registerInput("ada", "ada@example.com"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, domain.Identity{ID: ada.ID, Role: domain.RoleUser}, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)

	_, err = svc.Get(ctx, domain.Identity{ID: "someone", Role: domain.RoleUser}, ada.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_List(t *testing.T) {
	store := newUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	for _, name := range []string{"carol", "ada", "bob"} {
		_, err := svc.Register(ctx, registerInput(name, name+"@example.com"))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "ada", page.Items[0].Username)
	assert.Equal(t, 2, page.Page.TotalPages)
	assert.True(t, page.Page.HasNextPage)

	_, err = svc.List(ctx, 3, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.List(ctx, 0, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
