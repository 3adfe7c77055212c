package handler

import (
	"github.com/umd-esiea/umd-api/internal/core/domain"
)

func toUserView(u *domain.User) userView {
	return userView{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCourseView(c *domain.Course) courseView {
	return courseView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Content:     c.Content,
		Tools:       c.Tools,
	}
}

func toImageView(i *domain.Image) imageView {
	return imageView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		URL:         i.URL,
		User:        i.UserID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// projectImage keeps only the selected fields. The identifier is always kept.
func projectImage(i *domain.Image, selected []string) any {
	if len(selected) == 0 {
		return toImageView(i)
	}
	out := map[string]any{"_id": i.ID}
	for _, f := range selected {
		switch f {
		case domain.ImageFieldName:
			out["name"] = i.Name
		case domain.ImageFieldDescription:
			out["description"] = i.Description
		case domain.ImageFieldURL:
			out["url"] = i.URL
		case domain.ImageFieldUser:
			out["user"] = i.UserID
		case domain.ImageFieldCreatedAt:
			out["createdAt"] = i.CreatedAt
		case domain.ImageFieldUpdatedAt:
			out["updatedAt"] = i.UpdatedAt
		}
	}
	return out
}

func toPageMeta(p domain.PageInfo, size int) pageMeta {
	return pageMeta{
		TotalItems:  p.Total,
		CurrentPage: p.Page,
		PageSize:    size,
		TotalPages:  p.TotalPages,
		HasNextPage: p.HasNextPage,
		NextPage:    p.NextPage,
		HasPrevPage: p.HasPrevPage,
		PrevPage:    p.PrevPage,
	}
}
