// Package models holds types shared by the base repository layer.
package models

import "math"

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100

	// MaxPage keeps Skip within int64 at any limit.
	MaxPage = math.MaxInt64 / MaxLimit
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// NewPagination clamps page and limit to sane values.
func NewPagination(page, limit int64) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page > MaxPage {
		page = MaxPage
	}
	return Pagination{Page: page, Limit: limit}
}

// Skip is the number of documents before the page.
func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}
