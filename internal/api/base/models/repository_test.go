package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 10}, NewPagination(0, 0))
	assert.Equal(t, Pagination{Page: 3, Limit: 100}, NewPagination(3, 500))

	p := NewPagination(3, 20)
	assert.Equal(t, int64(40), p.Skip())
	assert.Equal(t, int64(0), NewPagination(1, 5).Skip())
}

func TestNewPaginationCapsPage(t *testing.T) {
	p := NewPagination(100000000000000001, 100)
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.Skip())

	p = NewPagination(math.MaxInt64, 1)
	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, MaxPage-1, p.Skip())
}
