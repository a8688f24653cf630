package service

import (
	"context"
	"testing"
	"time"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendeeStore struct {
	nextID    models.ID
	attendees map[models.ID]*models.EventAttendee
}

func newFakeAttendeeStore() *fakeAttendeeStore {
	return &fakeAttendeeStore{attendees: make(map[models.ID]*models.EventAttendee)}
}

func (s *fakeAttendeeStore) live(eventID models.ID) []*models.EventAttendee {
	var out []*models.EventAttendee
	for _, a := range s.attendees {
		if a.DeletedAt == nil && (eventID == 0 || a.EventID == eventID) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

func page(all []*models.EventAttendee, params query.ListParams) ([]*models.EventAttendee, int) {
	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

func (s *fakeAttendeeStore) List(_ context.Context, params query.ListParams) ([]*models.EventAttendee, int, error) {
	out, total := page(s.live(0), params)
	return out, total, nil
}

func (s *fakeAttendeeStore) ListByEvent(_ context.Context, eventID models.ID, params query.ListParams) ([]*models.EventAttendee, int, error) {
	out, total := page(s.live(eventID), params)
	return out, total, nil
}

func (s *fakeAttendeeStore) GetByID(_ context.Context, id models.ID, includeDeleted bool) (*models.EventAttendee, error) {
	a, ok := s.attendees[id]
	if !ok {
		return nil, nil
	}
	if a.DeletedAt != nil && !includeDeleted {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *fakeAttendeeStore) PairExists(_ context.Context, eventID, userProfileID models.ID) (bool, error) {
	for _, a := range s.attendees {
		if a.EventID == eventID && a.UserProfileID == userProfileID && a.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAttendeeStore) Insert(_ context.Context, a *models.EventAttendee) error {
	s.nextID++
	a.ID = s.nextID
	a.JoinedAt = time.Now()
	a.CreatedAt = a.JoinedAt
	cp := *a
	s.attendees[a.ID] = &cp
	return nil
}

func (s *fakeAttendeeStore) SoftDelete(_ context.Context, id models.ID, now time.Time) (bool, error) {
	a, ok := s.attendees[id]
	if !ok || a.DeletedAt != nil {
		return false, nil
	}
	a.DeletedAt = &now
	a.UpdatedAt = &now
	return true, nil
}

func newAttendeeFixture(t *testing.T) (*EventAttendeeService, models.ID) {
	t.Helper()

	profiles := newFakeProfileStore()
	u := &models.UserProfile{UserKeycloakID: "kc-1", UserName: "ahmet"}
	require.NoError(t, profiles.Insert(context.Background(), u))

	svc := NewEventAttendeeService(newFakeAttendeeStore(), profiles, logger.New("error", "text"))
	return svc, u.ID
}

func TestEventAttendeeCreate_DuplicatePair(t *testing.T) {
	svc, userID := newAttendeeFixture(t)

	_, err := svc.Create(context.Background(), 10, userID)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 10, userID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "User is already attending", apperr.From(err).Message)
}

func TestEventAttendeeCreate_UnknownProfile(t *testing.T) {
	svc, _ := newAttendeeFixture(t)

	_, err := svc.Create(context.Background(), 10, 999)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestEventAttendeeDelete_FreesThePair(t *testing.T) {
	svc, userID := newAttendeeFixture(t)

	a, err := svc.Create(context.Background(), 10, userID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), a.ID))

	// Tombstoned pair no longer blocks re-attending
	_, err = svc.Create(context.Background(), 10, userID)
	assert.NoError(t, err)
}

func TestEventAttendeeDelete_Twice(t *testing.T) {
	svc, userID := newAttendeeFixture(t)

	a, err := svc.Create(context.Background(), 10, userID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), a.ID))

	err = svc.Delete(context.Background(), a.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAlreadyDeleted))
}

func TestEventAttendeeListByEvent_Paginates(t *testing.T) {
	profiles := newFakeProfileStore()
	store := newFakeAttendeeStore()
	svc := NewEventAttendeeService(store, profiles, logger.New("error", "text"))

	for i := 0; i < 3; i++ {
		u := &models.UserProfile{
			UserKeycloakID: string(rune('a' + i)),
			UserName:       string(rune('a' + i)),
		}
		require.NoError(t, profiles.Insert(context.Background(), u))
		_, err := svc.Create(context.Background(), 10, u.ID)
		require.NoError(t, err)
	}

	attendees, pagination, err := svc.ListByEvent(context.Background(), 10, query.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, attendees, 2)
	assert.Equal(t, 3, pagination.TotalRecords)
	assert.Equal(t, 2, pagination.TotalPages)
}
