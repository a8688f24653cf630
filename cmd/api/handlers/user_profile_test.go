package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/cmd/api/service"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memProfileStore is a minimal in-memory service.UserProfileStore
type memProfileStore struct {
	nextID   models.ID
	profiles map[models.ID]*models.UserProfile
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[models.ID]*models.UserProfile)}
}

func (s *memProfileStore) GetByID(_ context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error) {
	u, ok := s.profiles[id]
	if !ok || (u.DeletedAt != nil && !includeDeleted) {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *memProfileStore) GetByUserName(_ context.Context, userName string, includeDeleted bool) (*models.UserProfile, error) {
	for _, u := range s.profiles {
		if u.UserName == userName && (u.DeletedAt == nil || includeDeleted) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memProfileStore) KeycloakIDInUse(_ context.Context, keycloakID string, excludeID models.ID) (bool, error) {
	for _, u := range s.profiles {
		if u.UserKeycloakID == keycloakID && u.DeletedAt == nil && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memProfileStore) UserNameInUse(_ context.Context, userName string, excludeID models.ID) (bool, error) {
	for _, u := range s.profiles {
		if u.UserName == userName && u.DeletedAt == nil && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memProfileStore) Insert(_ context.Context, u *models.UserProfile) error {
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	u.LastOnline = u.CreatedAt
	u.RowVersion = "0"
	cp := *u
	s.profiles[u.ID] = &cp
	return nil
}

func (s *memProfileStore) Update(_ context.Context, u *models.UserProfile, expectedVersion string) (bool, error) {
	cur, ok := s.profiles[u.ID]
	if !ok || cur.DeletedAt != nil || cur.RowVersion != expectedVersion {
		return false, nil
	}
	cp := *u
	s.profiles[u.ID] = &cp
	return true, nil
}

func (s *memProfileStore) SoftDelete(_ context.Context, id models.ID, now time.Time, expectedVersion, newVersion string) (bool, error) {
	cur, ok := s.profiles[id]
	if !ok || cur.DeletedAt != nil || cur.RowVersion != expectedVersion {
		return false, nil
	}
	cur.DeletedAt = &now
	cur.RowVersion = newVersion
	return true, nil
}

type passTx struct{}

func (passTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newProfileTestServer() (*echo.Echo, *UserProfileHandler) {
	log := logger.New("error", "text")
	svc := service.NewUserProfileService(newMemProfileStore(), passTx{}, log)
	h := NewUserProfileHandler(svc, log)

	e := echo.New()
	e.Validator = validation.New()
	return e, h
}

func createProfile(t *testing.T, e *echo.Echo, h *UserProfileHandler) models.UserProfile {
	t.Helper()
	rec := doRequest(e, h.Create, http.MethodPost, "/api/v1/user-profiles",
		`{"userKeycloakId":"kc-1","userName":"ahmet","region":"europe"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var u models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	return u
}

func TestUserProfileHandlerCreate_SetsDefaultsAndVersionZero(t *testing.T) {
	e, h := newProfileTestServer()

	u := createProfile(t, e, h)

	assert.Equal(t, "0", u.RowVersion)
	assert.Equal(t, models.RegionEurope, u.Region)
	assert.Equal(t, models.GenderUnknown, u.Gender)
	assert.Equal(t, models.PresenceUnknown, u.PresenceStatus)
}

func TestUserProfileHandlerCreate_RejectsBadEnum(t *testing.T) {
	e, h := newProfileTestServer()

	rec := doRequest(e, h.Create, http.MethodPost, "/api/v1/user-profiles",
		`{"userKeycloakId":"kc-1","userName":"ahmet","region":"atlantis"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "region")
}

func TestUserProfileHandlerPatch_HappyPath(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Update, http.MethodPatch, "/api/v1/user-profiles/1",
		`{"rowVersion":"0","bio":"igl, eu west"}`,
		map[string]string{"id": u.ID.String()})

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "1", updated.RowVersion)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "igl, eu west", *updated.Bio)
}

func TestUserProfileHandlerPatch_MissingRowVersion(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Update, http.MethodPatch, "/api/v1/user-profiles/1",
		`{"bio":"no token"}`,
		map[string]string{"id": u.ID.String()})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "rowVersion")
}

func TestUserProfileHandlerPatch_StaleVersion(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Update, http.MethodPatch, "/api/v1/user-profiles/1",
		`{"rowVersion":"0","bio":"first"}`,
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, h.Update, http.MethodPatch, "/api/v1/user-profiles/1",
		`{"rowVersion":"0","bio":"second"}`,
		map[string]string{"id": u.ID.String()})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Resource has been modified by another user"}`, rec.Body.String())
}

func TestUserProfileHandlerPatch_EmptyBody(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Update, http.MethodPatch, "/api/v1/user-profiles/1",
		`{"rowVersion":"0"}`,
		map[string]string{"id": u.ID.String()})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"No data provided"}`, rec.Body.String())
}

func TestUserProfileHandlerDelete_ThenGetIncludeDeleted(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Delete, http.MethodDelete, "/api/v1/user-profiles/1",
		`{"rowVersion":"0"}`,
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, h.Get, http.MethodGet, "/api/v1/user-profiles/1", "",
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, h.Get, http.MethodGet, "/api/v1/user-profiles/1?includeDeleted=true", "",
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	var tombstoned models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tombstoned))
	assert.NotNil(t, tombstoned.DeletedAt)
	assert.Equal(t, "1", tombstoned.RowVersion)
}

func TestUserProfileHandlerDelete_Twice(t *testing.T) {
	e, h := newProfileTestServer()
	u := createProfile(t, e, h)

	rec := doRequest(e, h.Delete, http.MethodDelete, "/api/v1/user-profiles/1",
		`{"rowVersion":"0"}`,
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, h.Delete, http.MethodDelete, "/api/v1/user-profiles/1",
		`{"rowVersion":"1"}`,
		map[string]string{"id": u.ID.String()})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"User profile is already deleted"}`, rec.Body.String())
}

func TestUserProfileHandlerGetByUserName(t *testing.T) {
	e, h := newProfileTestServer()
	createProfile(t, e, h)

	rec := doRequest(e, h.GetByUserName, http.MethodGet,
		"/api/v1/user-profiles/by-username/ahmet", "",
		map[string]string{"username": "ahmet"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, h.GetByUserName, http.MethodGet,
		"/api/v1/user-profiles/by-username/ghost", "",
		map[string]string{"username": "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
