package models

import "strings"

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// Paginate slices items for the requested page. A non-positive size returns
// every item on a single page.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return items, Pagination{Page: 1, PageSize: total, TotalCount: total}
	}
	// compare before multiplying so huge page numbers cannot overflow
	if page-1 > (total-1)/size {
		return []T{}, Pagination{Page: page, PageSize: size, TotalCount: total}
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}, Pagination{Page: page, PageSize: size, TotalCount: total}
	}
	end := total
	if total-start > size {
		end = start + size
	}
	return items[start:end], Pagination{Page: page, PageSize: size, TotalCount: total}
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
