package domain

import (
	"slices"
	"time"
)

const ResourceImage = "image"

// Image is an asset owned by exactly one user. The store assigns both timestamps.
type Image struct {
	ID          string
	Name        string
	Description string
	URL         string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i Image) EntityID() string { return i.ID }

func (i Image) UniqueKeys() []Key {
	return []Key{{Field: "name", Value: i.Name}}
}

// ImagePatch is a partial update of an image. Ownership cannot be changed.
type ImagePatch struct {
	Name        *string
	Description *string
	URL         *string
}

func (p ImagePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.URL == nil
}

func (p ImagePatch) Validate() error {
	switch {
	case blank(p.Name):
		return Invalid("name", "name must not be empty")
	case blank(p.URL):
		return Invalid("url", "url must not be empty")
	}
	return nil
}

func (p ImagePatch) UniqueKeys() []Key {
	if p.Name == nil {
		return nil
	}
	return []Key{{Field: "name", Value: *p.Name}}
}

// Image fields exposed to list queries, in API spelling.
const (
	ImageFieldID          = "id"
	ImageFieldName        = "name"
	ImageFieldDescription = "description"
	ImageFieldURL         = "url"
	ImageFieldUser        = "user"
	ImageFieldCreatedAt   = "createdAt"
	ImageFieldUpdatedAt   = "updatedAt"
)

var imageSortable = []string{
	ImageFieldName, ImageFieldDescription, ImageFieldURL, ImageFieldCreatedAt, ImageFieldUpdatedAt,
}

var imageSelectable = []string{
	ImageFieldID, ImageFieldName, ImageFieldDescription, ImageFieldURL,
	ImageFieldUser, ImageFieldCreatedAt, ImageFieldUpdatedAt,
}

func IsImageSortField(f string) bool   { return slices.Contains(imageSortable, f) }
func IsImageSelectField(f string) bool { return slices.Contains(imageSelectable, f) }
