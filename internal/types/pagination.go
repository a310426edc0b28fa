package types

// PaginationResponse mirrors the pagination block returned by the invoicing
// API on list endpoints.
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_entries"`
}

// HasNextPage reports whether another page can be fetched after the current one.
func (p PaginationResponse) HasNextPage() bool {
	return p.Page < p.TotalPages
}
