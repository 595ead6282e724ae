package page

import "math"

const (
	DefaultIndex        = 1
	DefaultItemsPerPage = 10
	MaxItemsPerPage     = 100
	// MaxIndex keeps Offset from overflowing at the largest page size.
	MaxIndex = math.MaxInt / MaxItemsPerPage
)

// Pagination is 1-based.
type Pagination struct {
	PageIndex    int
	ItemsPerPage int
}

// Normalize fills defaults for zero values and clamps the page size and index.
func (p Pagination) Normalize() Pagination {
	if p.PageIndex < 1 {
		p.PageIndex = DefaultIndex
	}
	if p.PageIndex > MaxIndex {
		p.PageIndex = MaxIndex
	}
	if p.ItemsPerPage < 1 {
		p.ItemsPerPage = DefaultItemsPerPage
	}
	if p.ItemsPerPage > MaxItemsPerPage {
		p.ItemsPerPage = MaxItemsPerPage
	}
	return p
}

func (p Pagination) Offset() int { return (p.PageIndex - 1) * p.ItemsPerPage }

type Page[T any] struct {
	Items        []T   `json:"items"`
	PageIndex    int   `json:"pageIndex"`
	ItemsPerPage int   `json:"itemsPerPage"`
	PageCount    int   `json:"pageCount"`
	ItemCount    int64 `json:"itemCount"`
}

// New builds a page; PageCount is ceil(itemCount / itemsPerPage).
func New[T any](items []T, p Pagination, itemCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:        items,
		PageIndex:    p.PageIndex,
		ItemsPerPage: p.ItemsPerPage,
		PageCount:    Count(itemCount, p.ItemsPerPage),
		ItemCount:    itemCount,
	}
}

func Count(itemCount int64, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(itemCount) / float64(itemsPerPage)))
}

// Map converts the items of a page, keeping its counters.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:        out,
		PageIndex:    p.PageIndex,
		ItemsPerPage: p.ItemsPerPage,
		PageCount:    p.PageCount,
		ItemCount:    p.ItemCount,
	}
}
