package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "english", "english"},
		{"underscore", "test_", `test\_`},
		{"percent", "100%", `100\%`},
		{"backslash", `a\b`, `a\\b`},
		{"mixed", `50%_off\`, `50\%\_off\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLike(tt.in))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%test\_%`, LikePattern("test_"))
	assert.Equal(t, `%100\%%`, LikePattern("100%"))
	// Empty search means no filter, not a literal-empty-string match
	assert.Equal(t, "", LikePattern(""))
}

func TestListParamsNormalize(t *testing.T) {
	p := ListParams{}
	p.Normalize("createdAt")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Equal(t, SortDesc, p.SortOrder)

	p = ListParams{Page: -3, Limit: 10_000, SortOrder: "asc"}
	p.Normalize("name")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, SortAsc, p.SortOrder)
}

func TestListParamsOffset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestSortColumn(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"code":      "code",
		"createdAt": "created_at",
	}

	col, err := SortColumn("createdAt", allowed)
	require.NoError(t, err)
	assert.Equal(t, "created_at", col)

	// Injection attempts and unknown keys are rejected, not ignored
	_, err = SortColumn("created_at; DROP TABLE languages", allowed)
	require.Error(t, err)
	_, err = SortColumn("updatedAt", allowed)
	require.Error(t, err)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 2, 3)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 3, p.TotalRecords)

	p = NewPagination(1, 10, 10)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(1, 10, 11)
	assert.Equal(t, 2, p.TotalPages)

	// Zero records yields zero pages by convention
	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}
