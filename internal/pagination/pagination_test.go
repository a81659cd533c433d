package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		totalCount int64
		want       Page
	}{
		{
			name:       "first page of many",
			pageNumber: 1,
			pageSize:   10,
			totalCount: 25,
			want:       Page{Skip: 0, Take: 10, TotalPages: 3, HasPrevious: false, HasNext: true},
		},
		{
			name:       "middle page",
			pageNumber: 2,
			pageSize:   10,
			totalCount: 25,
			want:       Page{Skip: 10, Take: 10, TotalPages: 3, HasPrevious: true, HasNext: true},
		},
		{
			name:       "last partial page",
			pageNumber: 3,
			pageSize:   10,
			totalCount: 25,
			want:       Page{Skip: 20, Take: 10, TotalPages: 3, HasPrevious: true, HasNext: false},
		},
		{
			name:       "page past the end",
			pageNumber: 5,
			pageSize:   10,
			totalCount: 25,
			want:       Page{Skip: 40, Take: 10, TotalPages: 3, HasPrevious: true, HasNext: false},
		},
		{
			name:       "empty result set",
			pageNumber: 1,
			pageSize:   10,
			totalCount: 0,
			want:       Page{Skip: 0, Take: 10, TotalPages: 0, HasPrevious: false, HasNext: false},
		},
		{
			name:       "exact multiple of page size",
			pageNumber: 2,
			pageSize:   5,
			totalCount: 10,
			want:       Page{Skip: 5, Take: 5, TotalPages: 2, HasPrevious: true, HasNext: false},
		},
		{
			name:       "single item",
			pageNumber: 1,
			pageSize:   100,
			totalCount: 1,
			want:       Page{Skip: 0, Take: 100, TotalPages: 1, HasPrevious: false, HasNext: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.pageNumber, tt.pageSize, tt.totalCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginateTotalPagesRoundsUp(t *testing.T) {
	assert.Equal(t, 3, Paginate(1, 10, 21).TotalPages)
	assert.Equal(t, 1, Paginate(1, 10, 10).TotalPages)
	assert.Equal(t, 2, Paginate(1, 10, 11).TotalPages)
}
