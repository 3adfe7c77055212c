package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

func newCourseResource(store *courseStore, reserver ports.KeyReserver) *Resource[domain.Course, domain.CoursePatch] {
	return NewResource(domain.ResourceCourse, ports.Store[domain.Course, domain.CoursePatch](store), reserver, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func TestResource_CreateRejectsDuplicateKey(t *testing.T) {
	store := newCourseStore()
	res := newCourseResource(store, nil)
	ctx := context.Background()

	if _, err := res.Create(ctx, &domain.Course{Name: "Go", Description: "d", Content: []string{"a"}}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := res.Create(ctx, &domain.Course{Name: "Go", Description: "other", Content: []string{"b"}})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(store.all()) != 1 {
		t.Fatalf("duplicate must not be stored, have %d records", len(store.all()))
	}
}

func TestResource_CreateReservesAndReleasesKeys(t *testing.T) {
	reserver := &recordingReserver{}
	res := newCourseResource(newCourseStore(), reserver)

	if _, err := res.Create(context.Background(), &domain.Course{Name: "Go", Content: []string{"a"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(reserver.reserved) != 1 || reserver.reserved[0].Value != "Go" {
		t.Fatalf("unexpected reservations: %+v", reserver.reserved)
	}
	if reserver.released != 1 {
		t.Fatalf("expected one release, got %d", reserver.released)
	}
}

func TestResource_CreateFailsWhenReservationFails(t *testing.T) {
	store := newCourseStore()
	res := newCourseResource(store, &recordingReserver{err: domain.Conflict(domain.ResourceCourse, domain.Key{Field: "name", Value: "Go"})})

	_, err := res.Create(context.Background(), &domain.Course{Name: "Go"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(store.all()) != 0 {
		t.Fatal("nothing must be stored")
	}
}

func TestResource_UpdateEmptyPatch(t *testing.T) {
	res := newCourseResource(newCourseStore(), nil)

	_, err := res.Update(context.Background(), "missing", domain.CoursePatch{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty patch must be rejected before lookup, got %v", err)
	}
}

func TestResource_UpdateEmptyPatchLeavesRecordUnchanged(t *testing.T) {
	store := newCourseStore()
	res := newCourseResource(store, nil)
	ctx := context.Background()

	id, err := res.Create(ctx, &domain.Course{Name: "Go", Description: "basics", Content: []string{"syntax", "types"}, Tools: []string{"gopls"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := res.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, err := res.Update(ctx, id, domain.CoursePatch{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	after, err := res.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("record changed by empty patch:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestResource_UpdateMissing(t *testing.T) {
	res := newCourseResource(newCourseStore(), nil)

	_, err := res.Update(context.Background(), "missing", domain.CoursePatch{Name: strPtr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "course not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestResource_UpdateKeepsOwnKey(t *testing.T) {
	store := newCourseStore()
	res := newCourseResource(store, nil)
	ctx := context.Background()

	id, _ := res.Create(ctx, &domain.Course{Name: "Go", Description: "old", Content: []string{"a"}})

	updated, err := res.Update(ctx, id, domain.CoursePatch{Name: strPtr("Go"), Description: strPtr("new")})
	if err != nil {
		t.Fatalf("renaming to its own name must succeed: %v", err)
	}
	if updated.Description != "new" || updated.Content[0] != "a" {
		t.Fatalf("only supplied fields may change: %+v", updated)
	}
}

func TestResource_UpdateConflictsWithOtherRecord(t *testing.T) {
	store := newCourseStore()
	res := newCourseResource(store, nil)
	ctx := context.Background()

	_, _ = res.Create(ctx, &domain.Course{Name: "Go"})
	id, _ := res.Create(ctx, &domain.Course{Name: "Rust"})

	if _, err := res.Update(ctx, id, domain.CoursePatch{Name: strPtr("Go")}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestResource_DeleteMissing(t *testing.T) {
	res := newCourseResource(newCourseStore(), nil)

	if err := res.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResource_WrapsStoreFailures(t *testing.T) {
	store := newCourseStore()
	boom := errors.New("connection reset")
	store.err = boom
	res := newCourseResource(store, nil)

	_, err := res.Get(context.Background(), "id001")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("store failure must not look like not-found")
	}
}
