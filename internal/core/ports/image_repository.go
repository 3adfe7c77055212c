package ports

import (
	"context"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

// ImageFilter carries the resolved query for listing images.
type ImageFilter struct {
	UserID string   // owner whose images are listed; always set
	Search string   // optional: case-insensitive literal match on name, description or url
	Sort   string   // API field name, already validated
	Asc    bool     // ascending when true, descending otherwise
	Select []string // optional projection, API field names; empty = all fields
}

// ImageRepository defines persistence operations for images.
type ImageRepository interface {
	Store[domain.Image, domain.ImagePatch]
	Count(ctx context.Context, filter ImageFilter) (int64, error)
	// Find returns the images of one page matching filter.
	Find(ctx context.Context, filter ImageFilter, page domain.PageInfo) ([]*domain.Image, error)
}
