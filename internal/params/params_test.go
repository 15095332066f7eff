package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", 15, 1, 0},
		{"explicit", "limit=20&page=3", 20, 3, 40},
		{"limit capped", "limit=500", 50, 1, 0},
		{"limit zero falls back", "limit=0", 15, 1, 0},
		{"negative page ignored", "page=-2", 15, 1, 0},
		{"garbage ignored", "limit=abc&page=xyz", 15, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			p := ParsePagination(q)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Limit: 10, Page: 2, Offset: 10}
	p.ComputeMeta(35)

	assert.Equal(t, 35, p.Total)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = Pagination{Limit: 10, Page: 4, Offset: 30}
	p.ComputeMeta(35)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = Pagination{Limit: 10, Page: 1}
	p.ComputeMeta(0)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Equal(t, 0, p.TotalPages)
}
