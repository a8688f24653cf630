package repository

import (
	"context"
	"fmt"

	"github.com/noobgg-team/noobgg/common/db"
	"github.com/noobgg-team/noobgg/common/models"
)

// FavoriteRepository handles database operations for favorite-game links
type FavoriteRepository struct {
	db *db.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *db.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// ListByUser returns a user's favorites joined with the game catalog,
// newest first
func (r *FavoriteRepository) ListByUser(ctx context.Context, userProfileID models.ID) ([]*models.FavoriteGameDetail, error) {
	q := `
		SELECT f.id, f.game_id, g.name, f.created_at
		FROM user_favorite_games f
		JOIN games g ON g.id = f.game_id
		WHERE f.user_profile_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Querier(ctx).Query(ctx, q, userProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite games: %w", err)
	}
	defer rows.Close()

	var favorites []*models.FavoriteGameDetail
	for rows.Next() {
		f := &models.FavoriteGameDetail{}
		if err := rows.Scan(&f.ID, &f.GameID, &f.GameName, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite game: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite games: %w", err)
	}

	return favorites, nil
}

// Exists reports whether this user already has this game favorited
func (r *FavoriteRepository) Exists(ctx context.Context, userProfileID, gameID models.ID) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM user_favorite_games
			WHERE user_profile_id = $1 AND game_id = $2
		)
	`

	var exists bool
	err := r.db.Querier(ctx).QueryRow(ctx, q, userProfileID, gameID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite game: %w", err)
	}
	return exists, nil
}

// Insert creates a favorite link and fills its generated fields
func (r *FavoriteRepository) Insert(ctx context.Context, f *models.UserFavoriteGame) error {
	q := `
		INSERT INTO user_favorite_games (user_profile_id, game_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, f.UserProfileID, f.GameID).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert favorite game: %w", err)
	}
	return nil
}

// Delete removes the link row outright; favorites carry no tombstone.
// False when the pair was not linked.
func (r *FavoriteRepository) Delete(ctx context.Context, userProfileID, gameID models.ID) (bool, error) {
	q := `DELETE FROM user_favorite_games WHERE user_profile_id = $1 AND game_id = $2`

	tag, err := r.db.Querier(ctx).Exec(ctx, q, userProfileID, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite game: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
