package models

// PaginatedResult is the envelope every list endpoint returns. Items keep
// the store order; the metadata is derived purely from the page tuple and
// the total count.
type PaginatedResult[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"totalCount"`
	PageNumber      int   `json:"pageNumber"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}
