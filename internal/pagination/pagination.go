// Package pagination converts a page tuple into store offsets and derived
// metadata. It is pure and shared by every list endpoint.
package pagination

// Page holds the skip/take offsets and the metadata derived from a
// (pageNumber, pageSize, totalCount) tuple.
type Page struct {
	Skip        int
	Take        int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// Paginate computes offsets and metadata. TotalPages is
// ceil(totalCount/pageSize) and is 0 exactly when totalCount is 0;
// HasNext is false whenever pageNumber is at or past the last page.
// Callers validate pageNumber >= 1 and pageSize in [1,100] upstream.
func Paginate(pageNumber, pageSize int, totalCount int64) Page {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page{
		Skip:        (pageNumber - 1) * pageSize,
		Take:        pageSize,
		TotalPages:  totalPages,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
	}
}
