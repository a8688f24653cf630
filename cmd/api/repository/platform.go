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

const platformColumns = `id, name, created_at, updated_at, deleted_at`

// PlatformRepository handles database operations for platforms
type PlatformRepository struct {
	db *db.DB
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *db.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

func scanPlatform(row pgx.Row) (*models.Platform, error) {
	p := &models.Platform{}
	err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListAll returns every live platform
func (r *PlatformRepository) ListAll(ctx context.Context) ([]*models.Platform, error) {
	q := `SELECT ` + platformColumns + ` FROM platforms WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*models.Platform
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platforms: %w", err)
	}

	return platforms, nil
}

// GetByID retrieves a live platform; (nil, nil) when absent or deleted
func (r *PlatformRepository) GetByID(ctx context.Context, id models.ID) (*models.Platform, error) {
	q := `SELECT ` + platformColumns + ` FROM platforms WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanPlatform(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}
	return p, nil
}

// Insert creates a platform and fills its generated fields
func (r *PlatformRepository) Insert(ctx context.Context, p *models.Platform) error {
	q := `INSERT INTO platforms (name) VALUES ($1) RETURNING id, created_at`

	err := r.db.Querier(ctx).QueryRow(ctx, q, p.Name).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert platform: %w", err)
	}
	return nil
}

// Update renames a live platform; false when absent
func (r *PlatformRepository) Update(ctx context.Context, p *models.Platform) (bool, error) {
	q := `
		UPDATE platforms
		SET name = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, p.ID, p.Name, time.Now()).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update platform: %w", err)
	}
	return true, nil
}

// SoftDelete marks a platform deleted; false when absent
func (r *PlatformRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE platforms
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
		return false, fmt.Errorf("failed to soft delete platform: %w", err)
	}
	return true, nil
}
