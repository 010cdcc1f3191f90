package pagination

import "math"

// Pager describes one page of an in-memory collection. The whole
// collection is fetched from the backend and paged locally, so all the
// arithmetic lives here.
type Pager struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// DefaultPageSize matches the listing views.
const DefaultPageSize = 8

// New builds a Pager for total items, clamping page to [1, TotalPages].
// TotalPages is never below 1, so an empty collection still renders as
// page 1 of 1.
func New(page, pageSize, total int) Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pager{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether a previous page exists.
func (p Pager) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pager) HasNext() bool { return p.Page < p.TotalPages }

// Prev returns the previous page number, staying at 1 at the lower bound.
func (p Pager) Prev() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// Next returns the next page number, staying at the last page at the
// upper bound.
func (p Pager) Next() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Slice returns the window of items belonging to the pager's page.
func Slice[T any](items []T, p Pager) []T {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return nil
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
