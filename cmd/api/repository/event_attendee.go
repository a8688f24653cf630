package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
)

const eventAttendeeColumns = `id, event_id, user_profile_id, joined_at, created_at, updated_at, deleted_at`

// EventAttendeeRepository handles database operations for event attendance
type EventAttendeeRepository struct {
	db *db.DB
}

// NewEventAttendeeRepository creates a new event attendee repository
func NewEventAttendeeRepository(db *db.DB) *EventAttendeeRepository {
	return &EventAttendeeRepository{db: db}
}

func scanEventAttendee(row pgx.Row) (*models.EventAttendee, error) {
	a := &models.EventAttendee{}
	err := row.Scan(&a.ID, &a.EventID, &a.UserProfileID, &a.JoinedAt, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *EventAttendeeRepository) list(ctx context.Context, where string, args []any, params query.ListParams) ([]*models.EventAttendee, int, error) {
	countQ := `SELECT COUNT(*) FROM event_attendees WHERE ` + where

	var total int
	if err := r.db.Querier(ctx).QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count event attendees: %w", err)
	}

	dataQ := fmt.Sprintf(
		`SELECT %s FROM event_attendees WHERE %s ORDER BY joined_at DESC LIMIT $%d OFFSET $%d`,
		eventAttendeeColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.db.Querier(ctx).Query(ctx, dataQ, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list event attendees: %w", err)
	}
	defer rows.Close()

	var attendees []*models.EventAttendee
	for rows.Next() {
		a, err := scanEventAttendee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event attendee: %w", err)
		}
		attendees = append(attendees, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event attendees: %w", err)
	}

	return attendees, total, nil
}

// List returns a page of live attendance records with the total live count
func (r *EventAttendeeRepository) List(ctx context.Context, params query.ListParams) ([]*models.EventAttendee, int, error) {
	return r.list(ctx, `deleted_at IS NULL`, nil, params)
}

// ListByEvent returns a page of one event's live attendance records
func (r *EventAttendeeRepository) ListByEvent(ctx context.Context, eventID models.ID, params query.ListParams) ([]*models.EventAttendee, int, error) {
	return r.list(ctx, `event_id = $1 AND deleted_at IS NULL`, []any{eventID}, params)
}

// GetByID retrieves an attendance record; (nil, nil) when absent.
// Tombstoned records are hidden unless includeDeleted is set.
func (r *EventAttendeeRepository) GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.EventAttendee, error) {
	q := `SELECT ` + eventAttendeeColumns + ` FROM event_attendees WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	a, err := scanEventAttendee(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event attendee: %w", err)
	}
	return a, nil
}

// PairExists reports whether the user already has a live attendance record
// for this event
func (r *EventAttendeeRepository) PairExists(ctx context.Context, eventID, userProfileID models.ID) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM event_attendees
			WHERE event_id = $1 AND user_profile_id = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx, q, eventID, userProfileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event attendee pair: %w", err)
	}
	return exists, nil
}

// Insert creates an attendance record and fills its generated fields
func (r *EventAttendeeRepository) Insert(ctx context.Context, a *models.EventAttendee) error {
	q := `
		INSERT INTO event_attendees (event_id, user_profile_id)
		VALUES ($1, $2)
		RETURNING id, joined_at, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, a.EventID, a.UserProfileID).
		Scan(&a.ID, &a.JoinedAt, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event attendee: %w", err)
	}
	return nil
}

// SoftDelete marks an attendance record deleted; false when absent
func (r *EventAttendeeRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE event_attendees
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deleted models.ID
	err := r.db.Querier(ctx).QueryRow(ctx, q, id, now).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to soft delete event attendee: %w", err)
	}
	return true, nil
}
