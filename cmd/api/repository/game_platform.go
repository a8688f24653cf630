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

const gamePlatformColumns = `id, game_id, platform_id, created_at, updated_at, deleted_at`

// GamePlatformRepository handles database operations for game-platform links
type GamePlatformRepository struct {
	db *db.DB
}

// NewGamePlatformRepository creates a new game-platform repository
func NewGamePlatformRepository(db *db.DB) *GamePlatformRepository {
	return &GamePlatformRepository{db: db}
}

func scanGamePlatform(row pgx.Row) (*models.GamePlatform, error) {
	gp := &models.GamePlatform{}
	err := row.Scan(&gp.ID, &gp.GameID, &gp.PlatformID, &gp.CreatedAt, &gp.UpdatedAt, &gp.DeletedAt)
	if err != nil {
		return nil, err
	}
	return gp, nil
}

// ListAll returns every live game-platform link
func (r *GamePlatformRepository) ListAll(ctx context.Context) ([]*models.GamePlatform, error) {
	q := `SELECT ` + gamePlatformColumns + ` FROM game_platforms WHERE deleted_at IS NULL ORDER BY id ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list game platforms: %w", err)
	}
	defer rows.Close()

	var links []*models.GamePlatform
	for rows.Next() {
		gp, err := scanGamePlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game platform: %w", err)
		}
		links = append(links, gp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game platforms: %w", err)
	}

	return links, nil
}

// GetByID retrieves a live link; (nil, nil) when absent or deleted
func (r *GamePlatformRepository) GetByID(ctx context.Context, id models.ID) (*models.GamePlatform, error) {
	q := `SELECT ` + gamePlatformColumns + ` FROM game_platforms WHERE id = $1 AND deleted_at IS NULL`

	gp, err := scanGamePlatform(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game platform: %w", err)
	}
	return gp, nil
}

// PairExists reports whether a live link for this game and platform exists,
// ignoring the row identified by excludeID
func (r *GamePlatformRepository) PairExists(ctx context.Context, gameID, platformID, excludeID models.ID) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM game_platforms
			WHERE game_id = $1 AND platform_id = $2 AND deleted_at IS NULL AND id <> $3
		)
	`

	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx, q, gameID, platformID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check game platform pair: %w", err)
	}
	return exists, nil
}

// Insert creates a link and fills its generated fields
func (r *GamePlatformRepository) Insert(ctx context.Context, gp *models.GamePlatform) error {
	q := `
		INSERT INTO game_platforms (game_id, platform_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, gp.GameID, gp.PlatformID).Scan(&gp.ID, &gp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert game platform: %w", err)
	}
	return nil
}

// Update repoints a live link; false when absent
func (r *GamePlatformRepository) Update(ctx context.Context, gp *models.GamePlatform) (bool, error) {
	q := `
		UPDATE game_platforms
		SET game_id = $2, platform_id = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, gp.ID, gp.GameID, gp.PlatformID, time.Now()).Scan(&gp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update game platform: %w", err)
	}
	return true, nil
}

// SoftDelete marks a link deleted; false when absent
func (r *GamePlatformRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE game_platforms
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
		return false, fmt.Errorf("failed to soft delete game platform: %w", err)
	}
	return true, nil
}
