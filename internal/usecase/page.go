package usecase

// PageInput carries the list query parameters shared by every paged endpoint.
// Page is 0-based and ElementsPerPage 0 selects the configured default.
type PageInput struct {
	Page            int
	ElementsPerPage int
	Filter          string // sort field
	SortBy          string // asc or desc
}

// DateRangeInput holds optional YYYY-MM-DD bounds, both inclusive.
type DateRangeInput struct {
	From string
	To   string
}
