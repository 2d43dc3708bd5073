package domain

import "testing"

func TestPaginationOptions_Normalize(t *testing.T) {
	opts := PaginationOptions{}.Normalize()
	if opts.Page != 1 || opts.Limit != 10 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}

	opts = PaginationOptions{Page: -3, Limit: 1000}.Normalize()
	if opts.Page != 1 || opts.Limit != 100 {
		t.Fatalf("expected clamped options, got %+v", opts)
	}

	opts = PaginationOptions{Page: 3, Limit: 20}.Normalize()
	if opts.Offset() != 40 {
		t.Fatalf("expected offset 40, got %d", opts.Offset())
	}
}

func TestNewPaginatedUsers_Totals(t *testing.T) {
	opts := PaginationOptions{Page: 2, Limit: 10}
	page := NewPaginatedUsers(nil, opts, 25)

	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.TotalPages)
	}
	if !page.HasNext || !page.HasPrevious {
		t.Fatalf("page 2 of 3 must have both neighbours: %+v", page)
	}

	last := NewPaginatedUsers(nil, PaginationOptions{Page: 3, Limit: 10}, 25)
	if last.HasNext {
		t.Fatalf("last page must not have next")
	}
}
