package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// ListImagesInput carries the raw list parameters of GET /images.
type ListImagesInput struct {
	Page   int
	Limit  int
	Sort   string   // default "createdAt"
	Order  string   // "asc" or "desc" (default)
	Select []string // projection
	Search string
	User   string // explicit owner filter; empty = caller
}

// ImagePage is one page of images.
type ImagePage struct {
	Items  []*domain.Image
	Page   domain.PageInfo
	Select []string // projection that was applied, empty = all fields
}

// CreateImageInput carries the fields of a new image. The owner is the caller.
type CreateImageInput struct {
	Name        string
	Description string
	URL         string
}

type ImageService interface {
	List(ctx context.Context, caller domain.Identity, in ListImagesInput) (*ImagePage, error)
	Get(ctx context.Context, id string) (*domain.Image, error)
	Create(ctx context.Context, caller domain.Identity, in CreateImageInput) (string, error)
	Update(ctx context.Context, id string, patch domain.ImagePatch) (*domain.Image, error)
	Delete(ctx context.Context, id string) error
}
