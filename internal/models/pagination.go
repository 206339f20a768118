package models

// Pagination contains pagination metadata returned alongside list results.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// PageSizes are the selectable page sizes.
var PageSizes = []int{25, 50, 100}

// DefaultPageSize is applied when a filter leaves the size unset.
const DefaultPageSize = 25

// ValidPageSize reports whether size is one of the selectable page sizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
