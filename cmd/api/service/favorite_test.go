package service

import (
	"context"
	"testing"
	"time"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteStore struct {
	nextID    models.ID
	favorites map[models.ID]*models.UserFavoriteGame
	names     map[models.ID]string
}

func newFakeFavoriteStore(gameNames map[models.ID]string) *fakeFavoriteStore {
	return &fakeFavoriteStore{
		favorites: make(map[models.ID]*models.UserFavoriteGame),
		names:     gameNames,
	}
}

func (s *fakeFavoriteStore) ListByUser(_ context.Context, userProfileID models.ID) ([]*models.FavoriteGameDetail, error) {
	var out []*models.FavoriteGameDetail
	for _, f := range s.favorites {
		if f.UserProfileID == userProfileID {
			out = append(out, &models.FavoriteGameDetail{
				ID:        f.ID,
				GameID:    f.GameID,
				GameName:  s.names[f.GameID],
				CreatedAt: f.CreatedAt,
			})
		}
	}
	return out, nil
}

func (s *fakeFavoriteStore) Exists(_ context.Context, userProfileID, gameID models.ID) (bool, error) {
	for _, f := range s.favorites {
		if f.UserProfileID == userProfileID && f.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFavoriteStore) Insert(_ context.Context, f *models.UserFavoriteGame) error {
	s.nextID++
	f.ID = s.nextID
	f.CreatedAt = time.Now()
	cp := *f
	s.favorites[f.ID] = &cp
	return nil
}

func (s *fakeFavoriteStore) Delete(_ context.Context, userProfileID, gameID models.ID) (bool, error) {
	for id, f := range s.favorites {
		if f.UserProfileID == userProfileID && f.GameID == gameID {
			delete(s.favorites, id)
			return true, nil
		}
	}
	return false, nil
}

func newFavoriteFixture(t *testing.T) (*FavoriteService, models.ID, models.ID) {
	t.Helper()

	profiles := newFakeProfileStore()
	u := &models.UserProfile{UserKeycloakID: "kc-1", UserName: "ahmet"}
	require.NoError(t, profiles.Insert(context.Background(), u))

	games := &fakeGameStore{games: map[models.ID]*models.Game{
		1: {ID: 1, Name: "Valorant"},
	}}

	store := newFakeFavoriteStore(map[models.ID]string{1: "Valorant"})
	svc := NewFavoriteService(store, profiles, games, logger.New("error", "text"))
	return svc, u.ID, 1
}

func TestFavoriteAdd_ThenList(t *testing.T) {
	svc, userID, gameID := newFavoriteFixture(t)

	f, err := svc.Add(context.Background(), userID, gameID)
	require.NoError(t, err)
	assert.NotZero(t, f.ID)

	favorites, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Valorant", favorites[0].GameName)
}

func TestFavoriteAdd_Duplicate(t *testing.T) {
	svc, userID, gameID := newFavoriteFixture(t)

	_, err := svc.Add(context.Background(), userID, gameID)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), userID, gameID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "Game is already in favorites", apperr.From(err).Message)
}

func TestFavoriteAdd_UnknownGame(t *testing.T) {
	svc, userID, _ := newFavoriteFixture(t)

	_, err := svc.Add(context.Background(), userID, 999)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "Game not found", apperr.From(err).Message)
}

func TestFavoriteAdd_UnknownUser(t *testing.T) {
	svc, _, gameID := newFavoriteFixture(t)

	_, err := svc.Add(context.Background(), 999, gameID)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "User profile not found", apperr.From(err).Message)
}

func TestFavoriteRemove_IsPermanent(t *testing.T) {
	svc, userID, gameID := newFavoriteFixture(t)

	_, err := svc.Add(context.Background(), userID, gameID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), userID, gameID))

	// Link rows are hard deleted, so re-adding is allowed
	_, err = svc.Add(context.Background(), userID, gameID)
	assert.NoError(t, err)
}

func TestFavoriteRemove_Missing(t *testing.T) {
	svc, userID, gameID := newFavoriteFixture(t)

	err := svc.Remove(context.Background(), userID, gameID)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
