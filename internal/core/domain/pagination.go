package domain

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PaginationOptions selects a page of a listing. Zero values fall back to
// page 1 / limit 10; limit is capped at 100.
type PaginationOptions struct {
	Page  int
	Limit int
}

// Normalize returns options with defaults and the limit cap applied.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the number of items to skip for the selected page.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginatedUsers is one page of the user listing with paging totals.
type PaginatedUsers struct {
	Items       []*User `json:"items"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
	Total       int64   `json:"total"`
	TotalPages  int     `json:"totalPages"`
	HasNext     bool    `json:"hasNext"`
	HasPrevious bool    `json:"hasPrevious"`
}

// NewPaginatedUsers computes totals for a fetched page.
func NewPaginatedUsers(items []*User, opts PaginationOptions, total int64) *PaginatedUsers {
	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return &PaginatedUsers{
		Items:       items,
		Page:        opts.Page,
		Limit:       opts.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}
}
