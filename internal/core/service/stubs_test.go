package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

// memStore is an in-memory ports.Store used by the service tests.
type memStore[T any, P any] struct {
	mu    sync.Mutex
	items map[string]T
	seq   int
	err   error // returned by every call when set

	setID func(*T, string)
	field func(*T, string) string
	apply func(*T, P)
}

func (s *memStore[T, P]) FindByKey(_ context.Context, key domain.Key) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, item := range s.items {
		if s.field(&item, key.Field) == key.Value {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore[T, P]) FindByID(_ context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (s *memStore[T, P]) Insert(_ context.Context, entity *T) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.seq++
	id := fmt.Sprintf("id%03d", s.seq)
	item := *entity
	s.setID(&item, id)
	s.items[id] = item
	return id, nil
}

func (s *memStore[T, P]) Update(_ context.Context, id string, patch P) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.apply(&item, patch)
	s.items[id] = item
	return &item, nil
}

func (s *memStore[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memStore[T, P]) all() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type userStore struct {
	*memStore[domain.User, domain.UserPatch]
}

func newUserStore() *userStore {
	return &userStore{&memStore[domain.User, domain.UserPatch]{
		items: map[string]domain.User{},
		setID: func(u *domain.User, id string) { u.ID = id },
		field: func(u *domain.User, f string) string {
			switch f {
			case "username":
				return u.Username
			case "email":
				return u.Email
			}
			return ""
		},
		apply: func(u *domain.User, p domain.UserPatch) {
			set(&u.Firstname, p.Firstname)
			set(&u.Lastname, p.Lastname)
			set(&u.Username, p.Username)
			set(&u.Email, p.Email)
			set(&u.PasswordHash, p.PasswordHash)
			set(&u.Role, p.Role)
			set(&u.Status, p.Status)
		},
	}}
}

func (s *userStore) Count(context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.all())), nil
}

func (s *userStore) List(_ context.Context, page domain.PageInfo) ([]*domain.User, error) {
	users := s.all()
	slices.SortFunc(users, func(a, b domain.User) int { return strings.Compare(a.Username, b.Username) })
	return window(users, page), nil
}

type courseStore struct {
	*memStore[domain.Course, domain.CoursePatch]
}

func newCourseStore() *courseStore {
	return &courseStore{&memStore[domain.Course, domain.CoursePatch]{
		items: map[string]domain.Course{},
		setID: func(c *domain.Course, id string) { c.ID = id },
		field: func(c *domain.Course, f string) string {
			if f == "name" {
				return c.Name
			}
			return ""
		},
		apply: func(c *domain.Course, p domain.CoursePatch) {
			set(&c.Name, p.Name)
			set(&c.Description, p.Description)
			if p.Content != nil {
				c.Content = *p.Content
			}
			if p.Tools != nil {
				c.Tools = *p.Tools
			}
		},
	}}
}

func (s *courseStore) List(context.Context) ([]*domain.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	courses := s.all()
	slices.SortFunc(courses, func(a, b domain.Course) int { return strings.Compare(a.Name, b.Name) })
	out := make([]*domain.Course, len(courses))
	for i := range courses {
		out[i] = &courses[i]
	}
	return out, nil
}

type imageStore struct {
	*memStore[domain.Image, domain.ImagePatch]
	lastFilter ports.ImageFilter
}

func newImageStore() *imageStore {
	return &imageStore{memStore: &memStore[domain.Image, domain.ImagePatch]{
		items: map[string]domain.Image{},
		setID: func(i *domain.Image, id string) { i.ID = id },
		field: func(i *domain.Image, f string) string {
			if f == "name" {
				return i.Name
			}
			return ""
		},
		apply: func(i *domain.Image, p domain.ImagePatch) {
			set(&i.Name, p.Name)
			set(&i.Description, p.Description)
			set(&i.URL, p.URL)
		},
	}}
}

func (s *imageStore) matching(filter ports.ImageFilter) []domain.Image {
	s.lastFilter = filter
	var out []domain.Image
	search := strings.ToLower(filter.Search)
	for _, img := range s.all() {
		if img.UserID != filter.UserID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(img.Name), search) &&
			!strings.Contains(strings.ToLower(img.Description), search) &&
			!strings.Contains(strings.ToLower(img.URL), search) {
			continue
		}
		out = append(out, img)
	}
	slices.SortFunc(out, func(a, b domain.Image) int {
		c := strings.Compare(a.Name, b.Name)
		if !filter.Asc {
			c = -c
		}
		return c
	})
	return out
}

func (s *imageStore) Count(_ context.Context, filter ports.ImageFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.matching(filter))), nil
}

func (s *imageStore) Find(_ context.Context, filter ports.ImageFilter, page domain.PageInfo) ([]*domain.Image, error) {
	return window(s.matching(filter), page), nil
}

func window[T any](items []T, page domain.PageInfo) []*T {
	start := int(page.Skip())
	if start > len(items) {
		start = len(items)
	}
	end := min(start+page.Limit, len(items))
	out := make([]*T, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, &items[i])
	}
	return out
}

// recordingReserver counts reservations and releases.
type recordingReserver struct {
	reserved []domain.Key
	released int
	err      error
}

func (r *recordingReserver) Reserve(_ context.Context, _ string, keys []domain.Key) (func(), error) {
	if r.err != nil {
		return nil, r.err
	}
	r.reserved = append(r.reserved, keys...)
	return func() { r.released++ }, nil
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(userID, role string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-" + userID + "-" + role, nil
}
