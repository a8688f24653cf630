package service

import (
	"context"
	"time"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
)

// EventAttendeeStore is the persistence surface for event attendance
type EventAttendeeStore interface {
	List(ctx context.Context, params query.ListParams) ([]*models.EventAttendee, int, error)
	ListByEvent(ctx context.Context, eventID models.ID, params query.ListParams) ([]*models.EventAttendee, int, error)
	GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.EventAttendee, error)
	PairExists(ctx context.Context, eventID, userProfileID models.ID) (bool, error)
	Insert(ctx context.Context, a *models.EventAttendee) error
	SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error)
}

// EventAttendeeService records who attends which event. Events themselves
// live in another system, so event ids are taken on trust; user profiles
// are ours and must exist.
type EventAttendeeService struct {
	store    EventAttendeeStore
	profiles ProfileLookup
	log      *logger.Logger
}

// NewEventAttendeeService creates a new event attendee service
func NewEventAttendeeService(store EventAttendeeStore, profiles ProfileLookup, log *logger.Logger) *EventAttendeeService {
	return &EventAttendeeService{store: store, profiles: profiles, log: log}
}

// List returns one page of live attendance records
func (s *EventAttendeeService) List(ctx context.Context, params query.ListParams) ([]*models.EventAttendee, query.Pagination, error) {
	params.Normalize("createdAt")

	attendees, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, apperr.Internal(err)
	}

	return attendees, query.NewPagination(params.Page, params.Limit, total), nil
}

// ListByEvent returns one page of an event's live attendance records
func (s *EventAttendeeService) ListByEvent(ctx context.Context, eventID models.ID, params query.ListParams) ([]*models.EventAttendee, query.Pagination, error) {
	params.Normalize("createdAt")

	attendees, total, err := s.store.ListByEvent(ctx, eventID, params)
	if err != nil {
		return nil, query.Pagination{}, apperr.Internal(err)
	}

	return attendees, query.NewPagination(params.Page, params.Limit, total), nil
}

// Get retrieves one live attendance record
func (s *EventAttendeeService) Get(ctx context.Context, id models.ID) (*models.EventAttendee, error) {
	a, err := s.store.GetByID(ctx, id, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Event attendee not found")
	}
	return a, nil
}

// Create records a user attending an event
func (s *EventAttendeeService) Create(ctx context.Context, eventID, userProfileID models.ID) (*models.EventAttendee, error) {
	u, err := s.profiles.GetByID(ctx, userProfileID, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User profile not found")
	}

	exists, err := s.store.PairExists(ctx, eventID, userProfileID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("User is already attending")
	}

	a := &models.EventAttendee{EventID: eventID, UserProfileID: userProfileID}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("event attendee created", "event_id", eventID, "user_profile_id", userProfileID)
	return a, nil
}

// Delete soft deletes an attendance record. A record deleted twice is a
// conflict, matching the original API.
func (s *EventAttendeeService) Delete(ctx context.Context, id models.ID) error {
	a, err := s.store.GetByID(ctx, id, true)
	if err != nil {
		return apperr.Internal(err)
	}
	if a == nil {
		return apperr.NotFound("Event attendee not found")
	}
	if a.DeletedAt != nil {
		return apperr.AlreadyDeleted("Event attendee is already deleted")
	}

	deleted, err := s.store.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.AlreadyDeleted("Event attendee is already deleted")
	}

	s.log.Info("event attendee deleted", "id", id)
	return nil
}
