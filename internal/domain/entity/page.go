package entity

// Page is the envelope for paginated query results. Total is counted over the
// full filter predicate, independent of the pagination window.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"` // 1-based page number.
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// NewPage builds a page envelope, normalizing a nil item slice to an empty one
// so serialized output is always a JSON array.
func NewPage[T any](items []T, page, size int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	}
}

// ValidPageRequest reports whether a page/size pair is well-formed.
func ValidPageRequest(page, size int) bool {
	return page >= 1 && size >= 1
}
