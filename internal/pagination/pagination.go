// Package pagination implements the zero-based paging windows shared by
// all list endpoints.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// Per-call-site defaults for ResultsPerPage. These differ between listing
// kinds and existing clients depend on the exact values.
const (
	PeriodPageSize          = 10 // budget period listings
	PeriodEntriesPageSize   = 50 // expenses/earnings within a period
	CategoryEntriesPageSize = 32 // expenses/earnings within a budgeted category
)

// PageRequest holds pagination parameters parsed from query strings.
// CurrentPage is zero-based; page index 0 is reported to clients as page 1.
type PageRequest struct {
	CurrentPage    int `form:"currentPage" binding:"omitempty,min=0"`
	ResultsPerPage int `form:"resultsPerPage" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in the given per-page default when the request omits it.
func (p *PageRequest) Defaults(resultsPerPage int) {
	if p.ResultsPerPage == 0 {
		p.ResultsPerPage = resultsPerPage
	}
}

// Skip returns the number of rows to skip for the requested page. It is
// never clamped: a page beyond the end produces an empty item list while
// the reported page number is still clamped in NewPagedResult.
func (p *PageRequest) Skip() int {
	return p.CurrentPage * p.ResultsPerPage
}

// PagedResult wraps a page of items with paging metadata.
type PagedResult[T any] struct {
	Items         []T   `json:"items"`
	CurrentPage   int   `json:"currentPage"`
	TotalResults  int64 `json:"totalResults"`
	NumberOfPages int   `json:"numberOfPages"`
}

// NewPagedResult builds a PagedResult from the fetched items and the total
// row count. The reported CurrentPage is the one-based requested page,
// clamped to NumberOfPages when the request ran past the end.
func NewPagedResult[T any](items []T, page PageRequest, totalResults int64) PagedResult[T] {
	numberOfPages := int(math.Ceil(float64(totalResults) / float64(page.ResultsPerPage)))
	currentPage := page.CurrentPage + 1
	if currentPage > numberOfPages {
		currentPage = numberOfPages
	}
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:         items,
		CurrentPage:   currentPage,
		TotalResults:  totalResults,
		NumberOfPages: numberOfPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the
// given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Skip()).Limit(req.ResultsPerPage)
	}
}
