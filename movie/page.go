package movie

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page selects a 1-based page of a listing.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes raw page parameters. Non-positive values fall back to
// the defaults.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Skip() int {
	return (p.Number - 1) * p.Limit
}

// Result is one page of movies plus the number of movies matching the
// filter across all pages.
type Result struct {
	Movies []Movie
	Count  int64
	Page   Page
}

func (r Result) TotalPages() int {
	if r.Page.Limit <= 0 {
		return 0
	}
	limit := int64(r.Page.Limit)
	return int((r.Count + limit - 1) / limit)
}

func (r Result) HasNext() bool {
	return int64(r.Page.Number)*int64(r.Page.Limit) < r.Count
}

func (r Result) HasPrev() bool {
	return r.Page.Number > 1
}
