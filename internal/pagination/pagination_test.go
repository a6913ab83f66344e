package pagination

import "testing"

func TestNewPagedResult(t *testing.T) {
	t.Run("first_page_reported_as_one", func(t *testing.T) {
		page := PageRequest{CurrentPage: 0, ResultsPerPage: 10}
		result := NewPagedResult([]int{1, 2, 3, 4, 5}, page, 5)

		if result.CurrentPage != 1 {
			t.Errorf("expected currentPage 1, got %d", result.CurrentPage)
		}
		if result.NumberOfPages != 1 {
			t.Errorf("expected 1 page, got %d", result.NumberOfPages)
		}
		if result.TotalResults != 5 {
			t.Errorf("expected 5 total results, got %d", result.TotalResults)
		}
	})

	t.Run("out_of_range_page_is_clamped", func(t *testing.T) {
		page := PageRequest{CurrentPage: 99, ResultsPerPage: 10}
		result := NewPagedResult([]int{}, page, 5)

		if result.CurrentPage != 1 {
			t.Errorf("expected currentPage clamped to 1, got %d", result.CurrentPage)
		}
		if len(result.Items) != 0 {
			t.Errorf("expected empty items, got %d", len(result.Items))
		}
	})

	t.Run("skip_is_never_clamped", func(t *testing.T) {
		page := PageRequest{CurrentPage: 99, ResultsPerPage: 10}
		if page.Skip() != 990 {
			t.Errorf("expected skip 990, got %d", page.Skip())
		}
	})

	t.Run("pages_round_up", func(t *testing.T) {
		page := PageRequest{CurrentPage: 0, ResultsPerPage: 10}
		result := NewPagedResult(make([]int, 10), page, 21)

		if result.NumberOfPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.NumberOfPages)
		}
	})

	t.Run("empty_result_set", func(t *testing.T) {
		page := PageRequest{CurrentPage: 0, ResultsPerPage: 10}
		result := NewPagedResult[int](nil, page, 0)

		if result.NumberOfPages != 0 {
			t.Errorf("expected 0 pages, got %d", result.NumberOfPages)
		}
		if result.CurrentPage != 0 {
			t.Errorf("expected currentPage 0 for empty set, got %d", result.CurrentPage)
		}
		if result.Items == nil {
			t.Error("expected non-nil items slice")
		}
	})

	t.Run("defaults_fill_only_missing_values", func(t *testing.T) {
		page := PageRequest{}
		page.Defaults(PeriodPageSize)
		if page.ResultsPerPage != 10 {
			t.Errorf("expected default 10, got %d", page.ResultsPerPage)
		}

		page = PageRequest{ResultsPerPage: 25}
		page.Defaults(PeriodEntriesPageSize)
		if page.ResultsPerPage != 25 {
			t.Errorf("expected explicit 25 to be kept, got %d", page.ResultsPerPage)
		}
	})
}
