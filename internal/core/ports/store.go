package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// Store is the persistence capability shared by every resource.
// T is the entity type, P its partial-update type.
//
// Implementations must return an error wrapping domain.ErrNotFound when a
// lookup misses, and domain.ErrConflict when the store itself rejects a
// duplicate unique key.
type Store[T any, P any] interface {
	FindByKey(ctx context.Context, key domain.Key) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	// Insert persists entity and returns the identifier assigned by the store.
	Insert(ctx context.Context, entity *T) (string, error)
	// Update applies only the non-nil fields of patch and returns the stored result.
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// KeyReserver holds natural keys for the span between a uniqueness check and
// the insert that follows it. Release must be called once the write is done.
type KeyReserver interface {
	Reserve(ctx context.Context, resource string, keys []domain.Key) (release func(), err error)
}
