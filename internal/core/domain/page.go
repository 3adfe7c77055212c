package domain

// PageInfo describes one page of a paginated listing.
type PageInfo struct {
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
	NextPage    *int
	PrevPage    *int
}

// NewPageInfo derives page navigation from a 1-based page, a page size and the
// number of matching records. Callers must ensure page and limit are >= 1.
func NewPageInfo(page, limit int, total int64) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	info := PageInfo{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	if info.HasNextPage {
		next := page + 1
		info.NextPage = &next
	}
	if info.HasPrevPage {
		prev := page - 1
		info.PrevPage = &prev
	}
	return info
}

// Exists reports whether the page can be served. The first page of an empty
// result set is always served (as an empty page).
func (p PageInfo) Exists() bool {
	return p.Page == 1 || p.Page <= p.TotalPages
}

// Skip is the number of records preceding the page.
func (p PageInfo) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// ValidatePaging rejects pages or limits below one.
func ValidatePaging(page, limit int) error {
	if page < 1 {
		return Invalid("page", "page must be at least 1")
	}
	if limit < 1 {
		return Invalid("limit", "limit must be at least 1")
	}
	return nil
}

// PageNotFound reports a page number past the last page.
func PageNotFound() error {
	return &ResourceError{Kind: ErrNotFound, Detail: "page does not exist"}
}
