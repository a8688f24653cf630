package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/models"
)

const userProfileColumns = `
	id, user_keycloak_id, created_at, updated_at, deleted_at, last_online,
	birth_date, user_name, first_name, last_name, profile_image_url,
	banner_image_url, bio, gender, region, favorite_game_genre, player_type,
	industry_role, looking_for, presence_status, row_version`

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *db.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *db.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func scanUserProfile(row pgx.Row) (*models.UserProfile, error) {
	u := &models.UserProfile{}
	err := row.Scan(
		&u.ID,
		&u.UserKeycloakID,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DeletedAt,
		&u.LastOnline,
		&u.BirthDate,
		&u.UserName,
		&u.FirstName,
		&u.LastName,
		&u.ProfileImageURL,
		&u.BannerImageURL,
		&u.Bio,
		&u.Gender,
		&u.Region,
		&u.FavoriteGameGenre,
		&u.PlayerType,
		&u.IndustryRole,
		&u.LookingFor,
		&u.PresenceStatus,
		&u.RowVersion,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a profile. Absent rows yield (nil, nil); soft-deleted
// rows count as absent unless includeDeleted is set.
func (r *UserProfileRepository) GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error) {
	q := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	u, err := scanUserProfile(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return u, nil
}

// GetByUserName retrieves a profile by its unique display name
func (r *UserProfileRepository) GetByUserName(ctx context.Context, userName string, includeDeleted bool) (*models.UserProfile, error) {
	q := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE user_name = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	u, err := scanUserProfile(r.db.Querier(ctx).QueryRow(ctx, q, userName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile by username: %w", err)
	}
	return u, nil
}

// KeycloakIDInUse reports whether another live profile holds the identity key
func (r *UserProfileRepository) KeycloakIDInUse(ctx context.Context, keycloakID string, excludeID models.ID) (bool, error) {
	q := `SELECT EXISTS(
		SELECT 1 FROM user_profiles
		WHERE user_keycloak_id = $1 AND deleted_at IS NULL AND id <> $2)`

	var exists bool
	if err := r.db.Querier(ctx).QueryRow(ctx, q, keycloakID, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check keycloak id: %w", err)
	}
	return exists, nil
}

// UserNameInUse reports whether another live profile holds the display name
func (r *UserProfileRepository) UserNameInUse(ctx context.Context, userName string, excludeID models.ID) (bool, error) {
	q := `SELECT EXISTS(
		SELECT 1 FROM user_profiles
		WHERE user_name = $1 AND deleted_at IS NULL AND id <> $2)`

	var exists bool
	if err := r.db.Querier(ctx).QueryRow(ctx, q, userName, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// Insert creates a profile with row_version '0' and fills generated fields
func (r *UserProfileRepository) Insert(ctx context.Context, u *models.UserProfile) error {
	q := `
		INSERT INTO user_profiles (
			user_keycloak_id, user_name, first_name, last_name,
			profile_image_url, banner_image_url, bio, birth_date,
			gender, region, favorite_game_genre, player_type,
			industry_role, looking_for, presence_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, last_online, row_version
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q,
		u.UserKeycloakID,
		u.UserName,
		u.FirstName,
		u.LastName,
		u.ProfileImageURL,
		u.BannerImageURL,
		u.Bio,
		u.BirthDate,
		u.Gender,
		u.Region,
		u.FavoriteGameGenre,
		u.PlayerType,
		u.IndustryRole,
		u.LookingFor,
		u.PresenceStatus,
	).Scan(&u.ID, &u.CreatedAt, &u.LastOnline, &u.RowVersion)

	if err != nil {
		return fmt.Errorf("failed to insert user profile: %w", err)
	}
	return nil
}

// Update writes the full field set of u, guarded by expectedVersion.
// The WHERE guard re-checks the version so a concurrent writer that slipped
// past the service's read still loses. Returns false when the guard matched
// no row.
func (r *UserProfileRepository) Update(ctx context.Context, u *models.UserProfile, expectedVersion string) (bool, error) {
	q := `
		UPDATE user_profiles
		SET user_keycloak_id = $3, user_name = $4, first_name = $5,
		    last_name = $6, profile_image_url = $7, banner_image_url = $8,
		    bio = $9, birth_date = $10, gender = $11, region = $12,
		    favorite_game_genre = $13, player_type = $14, industry_role = $15,
		    looking_for = $16, presence_status = $17,
		    updated_at = $18, row_version = $19
		WHERE id = $1 AND row_version = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var updated models.ID
	err := r.db.Querier(ctx).QueryRow(ctx, q,
		u.ID,
		expectedVersion,
		u.UserKeycloakID,
		u.UserName,
		u.FirstName,
		u.LastName,
		u.ProfileImageURL,
		u.BannerImageURL,
		u.Bio,
		u.BirthDate,
		u.Gender,
		u.Region,
		u.FavoriteGameGenre,
		u.PlayerType,
		u.IndustryRole,
		u.LookingFor,
		u.PresenceStatus,
		u.UpdatedAt,
		u.RowVersion,
	).Scan(&updated)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update user profile: %w", err)
	}
	return true, nil
}

// SoftDelete marks a live profile deleted and advances its version.
// Returns false when the guard matched no row.
func (r *UserProfileRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time, expectedVersion, newVersion string) (bool, error) {
	q := `
		UPDATE user_profiles
		SET deleted_at = $3, updated_at = $3, row_version = $4
		WHERE id = $1 AND row_version = $2 AND deleted_at IS NULL
		RETURNING id
	`

	var deleted models.ID
	err := r.db.Querier(ctx).QueryRow(ctx, q, id, expectedVersion, now, newVersion).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to soft delete user profile: %w", err)
	}
	return true, nil
}
