package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
	"github.com/noobgg-team/noobgg/common/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLanguageStore is a minimal in-memory service.LanguageStore for
// exercising handlers end to end through echo
type memLanguageStore struct {
	nextID    models.ID
	languages map[models.ID]*models.Language
}

func newMemLanguageStore() *memLanguageStore {
	return &memLanguageStore{languages: make(map[models.ID]*models.Language)}
}

func (s *memLanguageStore) List(_ context.Context, params query.ListParams) ([]*models.Language, int, error) {
	var out []*models.Language
	for _, l := range s.languages {
		if l.DeletedAt == nil {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (s *memLanguageStore) ListAll(_ context.Context) ([]*models.Language, error) {
	out, _, err := s.List(context.Background(), query.ListParams{})
	return out, err
}

func (s *memLanguageStore) GetByID(_ context.Context, id models.ID, includeDeleted bool) (*models.Language, error) {
	l, ok := s.languages[id]
	if !ok || (l.DeletedAt != nil && !includeDeleted) {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *memLanguageStore) CodeInUse(_ context.Context, code string, excludeID models.ID) (bool, error) {
	for _, l := range s.languages {
		if l.Code == code && l.DeletedAt == nil && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memLanguageStore) NameInUse(_ context.Context, name string, excludeID models.ID) (bool, error) {
	for _, l := range s.languages {
		if l.Name == name && l.DeletedAt == nil && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memLanguageStore) Insert(_ context.Context, l *models.Language) error {
	s.nextID++
	l.ID = s.nextID
	l.CreatedAt = time.Now()
	cp := *l
	s.languages[l.ID] = &cp
	return nil
}

func (s *memLanguageStore) Update(_ context.Context, l *models.Language) (bool, error) {
	cur, ok := s.languages[l.ID]
	if !ok || cur.DeletedAt != nil {
		return false, nil
	}
	cp := *l
	s.languages[l.ID] = &cp
	return true, nil
}

func (s *memLanguageStore) SoftDelete(_ context.Context, id models.ID, now time.Time) (bool, error) {
	cur, ok := s.languages[id]
	if !ok || cur.DeletedAt != nil {
		return false, nil
	}
	cur.DeletedAt = &now
	return true, nil
}

func newLanguageTestServer(store *memLanguageStore) (*echo.Echo, *LanguageHandler) {
	log := logger.New("error", "text")
	h := NewLanguageHandler(service.NewLanguageService(store, log), log)

	e := echo.New()
	e.Validator = validation.New()
	return e, h
}

func doRequest(e *echo.Echo, h echo.HandlerFunc, method, target, body string, pathParams map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	names := make([]string, 0, len(pathParams))
	values := make([]string, 0, len(pathParams))
	for k, v := range pathParams {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	_ = h(c)
	return rec
}

func TestLanguageHandlerCreate_Valid(t *testing.T) {
	e, h := newLanguageTestServer(newMemLanguageStore())

	rec := doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"name":"English","code":"en"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Language
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "English", created.Name)
	assert.Equal(t, models.ID(1), created.ID)
}

func TestLanguageHandlerCreate_ValidationErrors(t *testing.T) {
	e, h := newLanguageTestServer(newMemLanguageStore())

	rec := doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"flagUrl":"not a url"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "code")
	assert.Contains(t, body.Errors, "flagUrl")
}

func TestLanguageHandlerCreate_DuplicateCode(t *testing.T) {
	store := newMemLanguageStore()
	e, h := newLanguageTestServer(store)

	rec := doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"name":"English","code":"en"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"name":"Englisch","code":"en"}`, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Language with this code already exists."}`, rec.Body.String())
}

func TestLanguageHandlerGet_InvalidID(t *testing.T) {
	e, h := newLanguageTestServer(newMemLanguageStore())

	rec := doRequest(e, h.Get, http.MethodGet, "/api/v1/languages/abc", "",
		map[string]string{"id": "abc"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid id"}`, rec.Body.String())
}

func TestLanguageHandlerGet_NotFound(t *testing.T) {
	e, h := newLanguageTestServer(newMemLanguageStore())

	rec := doRequest(e, h.Get, http.MethodGet, "/api/v1/languages/7", "",
		map[string]string{"id": "7"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Language not found"}`, rec.Body.String())
}

func TestLanguageHandlerList_Envelope(t *testing.T) {
	store := newMemLanguageStore()
	e, h := newLanguageTestServer(store)

	doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"name":"English","code":"en"}`, nil)

	rec := doRequest(e, h.List, http.MethodGet, "/api/v1/languages?page=1&limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data       []models.Language `json:"data"`
		Pagination query.Pagination  `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 1, body.Pagination.TotalRecords)
	assert.Equal(t, 1, body.Pagination.TotalPages)
	assert.Equal(t, 10, body.Pagination.Limit)
}

func TestLanguageHandlerList_EmptyDataIsArray(t *testing.T) {
	e, h := newLanguageTestServer(newMemLanguageStore())

	rec := doRequest(e, h.List, http.MethodGet, "/api/v1/languages", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
	assert.Contains(t, rec.Body.String(), `"totalPages":0`)
}

func TestLanguageHandlerDelete_AlreadyDeleted(t *testing.T) {
	store := newMemLanguageStore()
	e, h := newLanguageTestServer(store)

	doRequest(e, h.Create, http.MethodPost, "/api/v1/languages",
		`{"name":"English","code":"en"}`, nil)

	rec := doRequest(e, h.Delete, http.MethodDelete, "/api/v1/languages/1", "",
		map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, h.Delete, http.MethodDelete, "/api/v1/languages/1", "",
		map[string]string{"id": "1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Language is already deleted"}`, rec.Body.String())
}
