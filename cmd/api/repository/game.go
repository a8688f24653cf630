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

const gameColumns = `id, name, description, logo_url, created_at, updated_at, deleted_at`

// GameRepository handles database operations for games
type GameRepository struct {
	db *db.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *db.DB) *GameRepository {
	return &GameRepository{db: db}
}

func scanGame(row pgx.Row) (*models.Game, error) {
	g := &models.Game{}
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.LogoURL, &g.CreatedAt, &g.UpdatedAt, &g.DeletedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListAll returns every live game
func (r *GameRepository) ListAll(ctx context.Context) ([]*models.Game, error) {
	q := `SELECT ` + gameColumns + ` FROM games WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	return games, nil
}

// GetByID retrieves a live game; (nil, nil) when absent or deleted
func (r *GameRepository) GetByID(ctx context.Context, id models.ID) (*models.Game, error) {
	q := `SELECT ` + gameColumns + ` FROM games WHERE id = $1 AND deleted_at IS NULL`

	g, err := scanGame(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return g, nil
}

// Insert creates a game and fills its generated fields
func (r *GameRepository) Insert(ctx context.Context, g *models.Game) error {
	q := `
		INSERT INTO games (name, description, logo_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, g.Name, g.Description, g.LogoURL).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a live game; false when absent
func (r *GameRepository) Update(ctx context.Context, g *models.Game) (bool, error) {
	q := `
		UPDATE games
		SET name = $2, description = $3, logo_url = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, g.ID, g.Name, g.Description, g.LogoURL, time.Now()).
		Scan(&g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update game: %w", err)
	}
	return true, nil
}

// SoftDelete marks a game deleted; false when absent
func (r *GameRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE games
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
		return false, fmt.Errorf("failed to soft delete game: %w", err)
	}
	return true, nil
}
