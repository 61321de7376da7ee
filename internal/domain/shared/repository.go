package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListQuery carries the common listing parameters of the public API.
// Pagination is applied only when both Limit and Page are positive; otherwise
// the full matching set is returned.
type ListQuery struct {
	Limit      int
	Page       int
	SearchTerm string
	IsRecycled *bool
}

// Paginate reports whether pagination should be applied.
func (q ListQuery) Paginate() bool {
	return q.Limit > 0 && q.Page > 0
}

// Offset returns the row offset for the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PageMeta describes a page of a listing result.
type PageMeta struct {
	TotalData   int64 `json:"totalData"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageNumbers []int `json:"pageNumbers,omitempty"`
}

// NewPageMeta computes page counts for a listing. Limit of zero yields zero
// total pages, matching the unpaginated full-set case.
func NewPageMeta(total int64, limit, page int) PageMeta {
	meta := PageMeta{TotalData: total, CurrentPage: page}
	if limit > 0 {
		meta.TotalPages = int(total) / limit
		if int(total)%limit > 0 {
			meta.TotalPages++
		}
	}
	return meta
}

// WithPageNumbers attaches the explicit page-number list some listings expose.
func (m PageMeta) WithPageNumbers() PageMeta {
	m.PageNumbers = make([]int, m.TotalPages)
	for i := range m.PageNumbers {
		m.PageNumbers[i] = i + 1
	}
	return m
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// BulkResult reports the outcome of a bulk update.
type BulkResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}
