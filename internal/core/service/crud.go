package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

// Entity is what Resource needs to know about a stored record.
type Entity interface {
	EntityID() string
	UniqueKeys() []domain.Key
}

// Patch is an explicit partial update.
type Patch interface {
	IsEmpty() bool
	Validate() error
	// UniqueKeys returns the unique keys the patch would change.
	UniqueKeys() []domain.Key
}

// Resource implements the create/get/update/delete pattern shared by every
// resource on top of a ports.Store.
type Resource[T Entity, P Patch] struct {
	name     string
	store    ports.Store[T, P]
	reserver ports.KeyReserver
	log      zerolog.Logger
}

// NewResource returns a Resource for the named entity type. A nil reserver
// disables key reservation; uniqueness then relies on the check and on the
// store's own indexes.
func NewResource[T Entity, P Patch](name string, store ports.Store[T, P], reserver ports.KeyReserver, log zerolog.Logger) *Resource[T, P] {
	if reserver == nil {
		reserver = nopReserver{}
	}
	return &Resource[T, P]{
		name:     name,
		store:    store,
		reserver: reserver,
		log:      log.With().Str("resource", name).Logger(),
	}
}

// Create rejects the entity when any of its unique keys is taken, otherwise
// persists it and returns the new identifier.
func (r *Resource[T, P]) Create(ctx context.Context, entity *T) (string, error) {
	keys := (*entity).UniqueKeys()

	release, err := r.reserver.Reserve(ctx, r.name, keys)
	if err != nil {
		return "", err
	}
	defer release()

	if err := r.checkKeys(ctx, keys, ""); err != nil {
		return "", err
	}

	id, err := r.store.Insert(ctx, entity)
	if err != nil {
		return "", r.storeErr("insert", err)
	}

	r.log.Info().Str("id", id).Msg("created")
	return id, nil
}

// Get returns the record with the given id.
func (r *Resource[T, P]) Get(ctx context.Context, id string) (*T, error) {
	entity, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, r.storeErr("find", err)
	}
	return entity, nil
}

// Update applies the supplied fields of patch to the record with the given id.
func (r *Resource[T, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	if patch.IsEmpty() {
		return nil, domain.Invalid("", fmt.Sprintf("no %s fields were provided", r.name))
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.store.FindByID(ctx, id); err != nil {
		return nil, r.storeErr("find", err)
	}

	keys := patch.UniqueKeys()
	if len(keys) > 0 {
		release, err := r.reserver.Reserve(ctx, r.name, keys)
		if err != nil {
			return nil, err
		}
		defer release()

		if err := r.checkKeys(ctx, keys, id); err != nil {
			return nil, err
		}
	}

	updated, err := r.store.Update(ctx, id, patch)
	if err != nil {
		return nil, r.storeErr("update", err)
	}

	r.log.Info().Str("id", id).Msg("updated")
	return updated, nil
}

// Delete removes the record with the given id.
func (r *Resource[T, P]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return r.storeErr("delete", err)
	}
	r.log.Info().Str("id", id).Msg("deleted")
	return nil
}

// checkKeys fails with a conflict when a key is held by a record other than owner.
func (r *Resource[T, P]) checkKeys(ctx context.Context, keys []domain.Key, owner string) error {
	for _, key := range keys {
		existing, err := r.store.FindByKey(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return r.storeErr("find by "+key.Field, err)
		}
		if owner == "" || (*existing).EntityID() != owner {
			return domain.Conflict(r.name, key)
		}
	}
	return nil
}

// storeErr passes domain kinds through and wraps anything else as an
// unexpected persistence failure.
func (r *Resource[T, P]) storeErr(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(r.name)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidInput):
		return err
	}
	return fmt.Errorf("%s %s: %w", op, r.name, err)
}

type nopReserver struct{}

func (nopReserver) Reserve(context.Context, string, []domain.Key) (func(), error) {
	return func() {}, nil
}
