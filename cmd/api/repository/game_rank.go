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

const gameRankColumns = `id, name, image, rank_order, game_id, created_at, updated_at, deleted_at`

// GameRankRepository handles database operations for game ranks
type GameRankRepository struct {
	db *db.DB
}

// NewGameRankRepository creates a new game rank repository
func NewGameRankRepository(db *db.DB) *GameRankRepository {
	return &GameRankRepository{db: db}
}

func scanGameRank(row pgx.Row) (*models.GameRank, error) {
	gr := &models.GameRank{}
	err := row.Scan(&gr.ID, &gr.Name, &gr.Image, &gr.RankOrder, &gr.GameID, &gr.CreatedAt, &gr.UpdatedAt, &gr.DeletedAt)
	if err != nil {
		return nil, err
	}
	return gr, nil
}

// ListAll returns every live rank ordered by ladder position
func (r *GameRankRepository) ListAll(ctx context.Context) ([]*models.GameRank, error) {
	q := `SELECT ` + gameRankColumns + ` FROM game_ranks WHERE deleted_at IS NULL ORDER BY game_id ASC, rank_order ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list game ranks: %w", err)
	}
	defer rows.Close()

	var ranks []*models.GameRank
	for rows.Next() {
		gr, err := scanGameRank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game rank: %w", err)
		}
		ranks = append(ranks, gr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game ranks: %w", err)
	}

	return ranks, nil
}

// ListByGame returns the live ranks of one game ordered by ladder position
func (r *GameRankRepository) ListByGame(ctx context.Context, gameID models.ID) ([]*models.GameRank, error) {
	q := `SELECT ` + gameRankColumns + ` FROM game_ranks WHERE game_id = $1 AND deleted_at IS NULL ORDER BY rank_order ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game ranks: %w", err)
	}
	defer rows.Close()

	var ranks []*models.GameRank
	for rows.Next() {
		gr, err := scanGameRank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game rank: %w", err)
		}
		ranks = append(ranks, gr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game ranks: %w", err)
	}

	return ranks, nil
}

// GetByID retrieves a live rank; (nil, nil) when absent or deleted
func (r *GameRankRepository) GetByID(ctx context.Context, id models.ID) (*models.GameRank, error) {
	q := `SELECT ` + gameRankColumns + ` FROM game_ranks WHERE id = $1 AND deleted_at IS NULL`

	gr, err := scanGameRank(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game rank: %w", err)
	}
	return gr, nil
}

// Insert creates a rank and fills its generated fields
func (r *GameRankRepository) Insert(ctx context.Context, gr *models.GameRank) error {
	q := `
		INSERT INTO game_ranks (name, image, rank_order, game_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, gr.Name, gr.Image, gr.RankOrder, gr.GameID).
		Scan(&gr.ID, &gr.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert game rank: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a live rank; false when absent
func (r *GameRankRepository) Update(ctx context.Context, gr *models.GameRank) (bool, error) {
	q := `
		UPDATE game_ranks
		SET name = $2, image = $3, rank_order = $4, game_id = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, gr.ID, gr.Name, gr.Image, gr.RankOrder, gr.GameID, time.Now()).
		Scan(&gr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update game rank: %w", err)
	}
	return true, nil
}

// SoftDelete marks a rank deleted; false when absent
func (r *GameRankRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE game_ranks
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
		return false, fmt.Errorf("failed to soft delete game rank: %w", err)
	}
	return true, nil
}
