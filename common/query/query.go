// Package query builds safe, deterministic list queries: literal-substring
// search patterns, whitelisted sort columns and page math shared by every
// paginated endpoint.
package query

import (
	"strings"

	"github.com/noobgg-team/noobgg/common/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams are the normalized paging/sort/search inputs of a list endpoint
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Offset returns the row offset for the current page
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Normalize clamps paging values into range and fills defaults. Out-of-range
// values fall back to defaults rather than failing, matching how lenient
// list endpoints treat paging noise.
func (p *ListParams) Normalize(defaultSortBy string) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = defaultSortBy
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
}

// EscapeLike escapes LIKE wildcards so term matches as a literal substring.
// Backslash is the escape character and must itself be escaped first.
// The caller wraps the result in unescaped % wildcards.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// LikePattern returns the contains-pattern for term, with every wildcard in
// term neutralized. An empty term yields an empty pattern (no filter).
func LikePattern(term string) string {
	if term == "" {
		return ""
	}
	return "%" + EscapeLike(term) + "%"
}

// SortColumn resolves the API-facing sort key against a whitelist mapping
// key -> SQL column. An unknown key is a validation failure, never silently
// ignored or passed through to SQL.
func SortColumn(sortBy string, allowed map[string]string) (string, error) {
	col, ok := allowed[sortBy]
	if !ok {
		return "", apperr.Validation(map[string]string{
			"sortBy": "must be one of: " + strings.Join(keys(allowed), ", "),
		})
	}
	return col, nil
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Stable order for error messages
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Pagination is the paging envelope returned next to every data page
type Pagination struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// NewPagination computes totalPages = ceil(total/limit). Zero records means
// zero pages; list clients render their own empty state.
func NewPagination(page, limit, totalRecords int) Pagination {
	totalPages := 0
	if totalRecords > 0 {
		totalPages = (totalRecords + limit - 1) / limit
	}
	return Pagination{
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
	}
}
