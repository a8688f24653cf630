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

const distributorColumns = `id, name, description, website, logo_url, created_at, updated_at, deleted_at`

// DistributorRepository handles database operations for distributors
type DistributorRepository struct {
	db *db.DB
}

// NewDistributorRepository creates a new distributor repository
func NewDistributorRepository(db *db.DB) *DistributorRepository {
	return &DistributorRepository{db: db}
}

func scanDistributor(row pgx.Row) (*models.Distributor, error) {
	d := &models.Distributor{}
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Website, &d.LogoURL, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListAll returns every live distributor
func (r *DistributorRepository) ListAll(ctx context.Context) ([]*models.Distributor, error) {
	q := `SELECT ` + distributorColumns + ` FROM distributors WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	defer rows.Close()

	var distributors []*models.Distributor
	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distributor: %w", err)
		}
		distributors = append(distributors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distributors: %w", err)
	}

	return distributors, nil
}

// GetByID retrieves a live distributor; (nil, nil) when absent or deleted
func (r *DistributorRepository) GetByID(ctx context.Context, id models.ID) (*models.Distributor, error) {
	q := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1 AND deleted_at IS NULL`

	d, err := scanDistributor(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distributor: %w", err)
	}
	return d, nil
}

// Insert creates a distributor and fills its generated fields
func (r *DistributorRepository) Insert(ctx context.Context, d *models.Distributor) error {
	q := `
		INSERT INTO distributors (name, description, website, logo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, d.Name, d.Description, d.Website, d.LogoURL).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert distributor: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a live distributor; false when absent
func (r *DistributorRepository) Update(ctx context.Context, d *models.Distributor) (bool, error) {
	q := `
		UPDATE distributors
		SET name = $2, description = $3, website = $4, logo_url = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, d.ID, d.Name, d.Description, d.Website, d.LogoURL, time.Now()).
		Scan(&d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update distributor: %w", err)
	}
	return true, nil
}

// SoftDelete marks a distributor deleted; false when absent
func (r *DistributorRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE distributors
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
		return false, fmt.Errorf("failed to soft delete distributor: %w", err)
	}
	return true, nil
}
