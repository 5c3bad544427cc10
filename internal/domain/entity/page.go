package entity

// SortDirection orders a listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the direction is a known value.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// PageRequest is a 0-based page selection. SortField names a resource field
// that each repository maps onto a whitelisted column.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction SortDirection
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a listing.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	TotalPages    int
	TotalElements int64
}

// NewPage builds a Page from the rows of one request and the total row count.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:       content,
		PageNumber:    req.Page,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}

// MapPage converts the content of a page while keeping its counters.
func MapPage[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}

	return &Page[R]{
		Content:       out,
		PageNumber:    p.PageNumber,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
	}
}
