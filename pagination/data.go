package pagination

// Data carries the pagination state for a list page: where we are, how
// big the range is, and where prev/next lead. Handlers build it from a
// query result and hand it to templates and to the nav component.
type Data struct {
	CurrentPage int
	TotalPages  int
	PerPage     int
	Total       int64
	HasPrevious bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// NewData derives pagination state from a requested page, a page size and
// the total result count. The page is clamped into [1, TotalPages] and a
// non-positive perPage falls back to 1, so the result is always usable
// for offset math.
func NewData(page, perPage int, total int64) Data {
	if perPage < 1 {
		perPage = 1
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Data{
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     perPage,
		Total:       total,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
}

// Offset returns the query offset for the current page.
func (d Data) Offset() int {
	return (d.CurrentPage - 1) * d.PerPage
}

// Items generates the control sequence for this pagination state.
func (d Data) Items(opts Options) []Item {
	return Generate(d.TotalPages, d.CurrentPage, opts)
}
