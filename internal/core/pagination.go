// AngelaMos | 2026
// pagination.go

package core

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PageQuery is the common page/limit/search triple every list endpoint takes.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

func ParsePageQuery(r *http.Request) PageQuery {
	q := PageQuery{
		Page:   parseIntQuery(r, "page", defaultPage),
		Limit:  parseIntQuery(r, "limit", defaultLimit),
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}
	q.Normalize()
	return q
}

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

func (q *PageQuery) Skip() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// Pagination is the list-response metadata block.
type Pagination struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	Total       int64  `json:"total"`
	TotalPages  int64  `json:"totalPages"`
	Count       int    `json:"count"`
	HasNextPage bool   `json:"hasNextPage"`
	HasPrevPage bool   `json:"hasPrevPage"`
	Search      string `json:"search,omitempty"`
}

func NewPagination(q PageQuery, total int64, count int) Pagination {
	totalPages := (total + int64(q.Limit) - 1) / int64(q.Limit)
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		Page:        q.Page,
		Limit:       q.Limit,
		Total:       total,
		TotalPages:  totalPages,
		Count:       count,
		HasNextPage: int64(q.Page) < totalPages,
		HasPrevPage: q.Page > 1,
		Search:      q.Search,
	}
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
