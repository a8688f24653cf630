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

// languageSortColumns whitelists API sort keys against real columns
var languageSortColumns = map[string]string{
	"name":      "name",
	"code":      "code",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const languageColumns = `id, name, code, flag_url, created_at, updated_at, deleted_at`

// LanguageRepository handles database operations for languages
type LanguageRepository struct {
	db *db.DB
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *db.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

func scanLanguage(row pgx.Row) (*models.Language, error) {
	l := &models.Language{}
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Code,
		&l.FlagURL,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// List returns one page of live languages plus the total count for the same
// filter. The search term matches name or code as a literal substring.
func (r *LanguageRepository) List(ctx context.Context, params query.ListParams) ([]*models.Language, int, error) {
	sortCol, err := query.SortColumn(params.SortBy, languageSortColumns)
	if err != nil {
		return nil, 0, err
	}

	direction := "DESC"
	if params.SortOrder == query.SortAsc {
		direction = "ASC"
	}

	where := `deleted_at IS NULL`
	args := []any{}

	if pattern := query.LikePattern(params.Search); pattern != "" {
		where += ` AND (name ILIKE $1 ESCAPE '\' OR code ILIKE $1 ESCAPE '\')`
		args = append(args, pattern)
	}

	countQuery := `SELECT COUNT(*) FROM languages WHERE ` + where

	var total int
	if err := r.db.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count languages: %w", err)
	}

	dataQuery := fmt.Sprintf(
		`SELECT %s FROM languages WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		languageColumns, where, sortCol, direction, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.db.Querier(ctx).Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list languages: %w", err)
	}
	defer rows.Close()

	var languages []*models.Language
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating languages: %w", err)
	}

	return languages, total, nil
}

// ListAll returns every live language ordered by name
func (r *LanguageRepository) ListAll(ctx context.Context) ([]*models.Language, error) {
	q := `SELECT ` + languageColumns + ` FROM languages WHERE deleted_at IS NULL ORDER BY name ASC`

	rows, err := r.db.Querier(ctx).Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list all languages: %w", err)
	}
	defer rows.Close()

	var languages []*models.Language
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	return languages, nil
}

// GetByID retrieves a language. Absent rows yield (nil, nil); soft-deleted
// rows count as absent unless includeDeleted is set.
func (r *LanguageRepository) GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.Language, error) {
	q := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`
	if !includeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	l, err := scanLanguage(r.db.Querier(ctx).QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get language: %w", err)
	}
	return l, nil
}

// CodeInUse reports whether another live language holds the code
func (r *LanguageRepository) CodeInUse(ctx context.Context, code string, excludeID models.ID) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM languages WHERE code = $1 AND deleted_at IS NULL AND id <> $2)`

	var exists bool
	if err := r.db.Querier(ctx).QueryRow(ctx, q, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check language code: %w", err)
	}
	return exists, nil
}

// NameInUse reports whether another live language holds the name
func (r *LanguageRepository) NameInUse(ctx context.Context, name string, excludeID models.ID) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM languages WHERE name = $1 AND deleted_at IS NULL AND id <> $2)`

	var exists bool
	if err := r.db.Querier(ctx).QueryRow(ctx, q, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check language name: %w", err)
	}
	return exists, nil
}

// Insert creates a language and fills its generated fields
func (r *LanguageRepository) Insert(ctx context.Context, l *models.Language) error {
	q := `
		INSERT INTO languages (name, code, flag_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, l.Name, l.Code, l.FlagURL).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert language: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a live language. Returns false when
// the row is absent or already soft-deleted.
func (r *LanguageRepository) Update(ctx context.Context, l *models.Language) (bool, error) {
	q := `
		UPDATE languages
		SET name = $2, code = $3, flag_url = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := r.db.Querier(ctx).QueryRow(ctx, q, l.ID, l.Name, l.Code, l.FlagURL, time.Now()).
		Scan(&l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update language: %w", err)
	}
	return true, nil
}

// SoftDelete marks a language deleted. Returns false when absent.
func (r *LanguageRepository) SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error) {
	q := `
		UPDATE languages
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
		return false, fmt.Errorf("failed to soft delete language: %w", err)
	}
	return true, nil
}
