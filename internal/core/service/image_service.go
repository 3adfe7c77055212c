package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

const (
	DefaultImagePage  = 1
	DefaultImageLimit = 10
	MaxImageLimit     = 100
)

type ImageService struct {
	images *Resource[domain.Image, domain.ImagePatch]
	repo   ports.ImageRepository
	logger zerolog.Logger
}

func NewImageService(repo ports.ImageRepository, reserver ports.KeyReserver, logger zerolog.Logger) *ImageService {
	return &ImageService{
		images: NewResource(domain.ResourceImage, ports.Store[domain.Image, domain.ImagePatch](repo), reserver, logger),
		repo:   repo,
		logger: logger,
	}
}

// List returns one page of the images owned by in.User, or by the caller when
// no owner is given.
func (s *ImageService) List(ctx context.Context, caller domain.Identity, in ports.ListImagesInput) (*ports.ImagePage, error) {
	filter, page, limit, err := resolveImageQuery(caller, in)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}

	info := domain.NewPageInfo(page, limit, total)
	if !info.Exists() {
		return nil, domain.PageNotFound()
	}

	items, err := s.repo.Find(ctx, filter, info)
	if err != nil {
		return nil, fmt.Errorf("find images: %w", err)
	}
	return &ports.ImagePage{Items: items, Page: info, Select: filter.Select}, nil
}

func (s *ImageService) Get(ctx context.Context, id string) (*domain.Image, error) {
	return s.images.Get(ctx, id)
}

// Create stores a new image owned by the caller.
func (s *ImageService) Create(ctx context.Context, caller domain.Identity, in ports.CreateImageInput) (string, error) {
	switch {
	case caller.ID == "":
		return "", domain.ErrUnauthorized
	case strings.TrimSpace(in.Name) == "":
		return "", domain.Invalid("name", "name is required")
	case strings.TrimSpace(in.URL) == "":
		return "", domain.Invalid("url", "url is required")
	}

	now := time.Now().UTC()
	return s.images.Create(ctx, &domain.Image{
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		UserID:      caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ImageService) Update(ctx context.Context, id string, patch domain.ImagePatch) (*domain.Image, error) {
	return s.images.Update(ctx, id, patch)
}

func (s *ImageService) Delete(ctx context.Context, id string) error {
	return s.images.Delete(ctx, id)
}

// resolveImageQuery applies defaults and validates the list parameters.
func resolveImageQuery(caller domain.Identity, in ports.ListImagesInput) (ports.ImageFilter, int, int, error) {
	page, limit := in.Page, in.Limit
	if page == 0 {
		page = DefaultImagePage
	}
	if limit == 0 {
		limit = DefaultImageLimit
	}
	if err := domain.ValidatePaging(page, limit); err != nil {
		return ports.ImageFilter{}, 0, 0, err
	}
	if limit > MaxImageLimit {
		return ports.ImageFilter{}, 0, 0, domain.Invalid("limit", fmt.Sprintf("limit must be at most %d", MaxImageLimit))
	}

	filter := ports.ImageFilter{
		UserID: caller.ID,
		Search: strings.TrimSpace(in.Search),
		Sort:   domain.ImageFieldCreatedAt,
	}
	if in.User != "" {
		filter.UserID = in.User
	}
	if filter.UserID == "" {
		return ports.ImageFilter{}, 0, 0, domain.ErrUnauthorized
	}

	if in.Sort != "" {
		if !domain.IsImageSortField(in.Sort) {
			return ports.ImageFilter{}, 0, 0, domain.Invalid("sort", fmt.Sprintf("cannot sort images by %q", in.Sort))
		}
		filter.Sort = in.Sort
	}

	// anything but "asc" sorts descending
	filter.Asc = strings.EqualFold(in.Order, "asc")

	for _, f := range in.Select {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !domain.IsImageSelectField(f) {
			return ports.ImageFilter{}, 0, 0, domain.Invalid("select", fmt.Sprintf("unknown image field %q", f))
		}
		filter.Select = append(filter.Select, f)
	}

	return filter, page, limit, nil
}
