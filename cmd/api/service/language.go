package service

import (
	"context"
	"time"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
)

// LanguageStore is the persistence surface the language service needs.
// The pgx repository satisfies it in production; tests plug in a fake.
type LanguageStore interface {
	List(ctx context.Context, params query.ListParams) ([]*models.Language, int, error)
	ListAll(ctx context.Context) ([]*models.Language, error)
	GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.Language, error)
	CodeInUse(ctx context.Context, code string, excludeID models.ID) (bool, error)
	NameInUse(ctx context.Context, name string, excludeID models.ID) (bool, error)
	Insert(ctx context.Context, l *models.Language) error
	Update(ctx context.Context, l *models.Language) (bool, error)
	SoftDelete(ctx context.Context, id models.ID, now time.Time) (bool, error)
}

// LanguageService owns the language catalog rules: uniqueness of code and
// name among live rows, sanitized search, soft delete.
type LanguageService struct {
	store LanguageStore
	log   *logger.Logger
}

// NewLanguageService creates a new language service
func NewLanguageService(store LanguageStore, log *logger.Logger) *LanguageService {
	return &LanguageService{store: store, log: log}
}

// LanguagePatch is a partial field set for language updates. Nil means
// "leave unchanged".
type LanguagePatch struct {
	Name    *string
	Code    *string
	FlagURL *string
}

// HasChanges reports whether at least one field is being assigned
func (p *LanguagePatch) HasChanges() bool {
	return p.Name != nil || p.Code != nil || p.FlagURL != nil
}

// List returns one page of live languages matching the search term
func (s *LanguageService) List(ctx context.Context, params query.ListParams) ([]*models.Language, query.Pagination, error) {
	params.Normalize("createdAt")

	// The store rejects unknown sort keys with a typed validation error;
	// From keeps that a 400 instead of burying it as a 500
	languages, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, apperr.From(err)
	}

	return languages, query.NewPagination(params.Page, params.Limit, total), nil
}

// ListAll returns every live language ordered by name
func (s *LanguageService) ListAll(ctx context.Context) ([]*models.Language, error) {
	languages, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return languages, nil
}

// Get retrieves one live language
func (s *LanguageService) Get(ctx context.Context, id models.ID) (*models.Language, error) {
	l, err := s.store.GetByID(ctx, id, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if l == nil {
		return nil, apperr.NotFound("Language not found")
	}
	return l, nil
}

// Create inserts a language after checking code and name are free among
// live rows
func (s *LanguageService) Create(ctx context.Context, l *models.Language) (*models.Language, error) {
	if err := s.checkUnique(ctx, l.Code, l.Name, 0); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, l); err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("language created", "id", l.ID, "code", l.Code)
	return l, nil
}

// Update applies a partial field set to a live language
func (s *LanguageService) Update(ctx context.Context, id models.ID, patch LanguagePatch) (*models.Language, error) {
	if !patch.HasChanges() {
		return nil, apperr.BadRequest("No fields to update")
	}

	l, err := s.store.GetByID(ctx, id, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if l == nil {
		return nil, apperr.NotFound("Language not found")
	}

	if patch.Code != nil {
		l.Code = *patch.Code
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.FlagURL != nil {
		l.FlagURL = patch.FlagURL
	}

	if err := s.checkUnique(ctx, l.Code, l.Name, id); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, l)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !updated {
		return nil, apperr.NotFound("Language not found")
	}

	return l, nil
}

// Delete soft deletes a language. Deleting an already deleted language is
// a bad request, matching the original API.
func (s *LanguageService) Delete(ctx context.Context, id models.ID) error {
	l, err := s.store.GetByID(ctx, id, true)
	if err != nil {
		return apperr.Internal(err)
	}
	if l == nil {
		return apperr.NotFound("Language not found")
	}
	if l.DeletedAt != nil {
		return apperr.New(apperr.KindBadRequest, "Language is already deleted")
	}

	deleted, err := s.store.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("Language not found")
	}

	s.log.Info("language deleted", "id", id)
	return nil
}

func (s *LanguageService) checkUnique(ctx context.Context, code, name string, excludeID models.ID) error {
	inUse, err := s.store.CodeInUse(ctx, code, excludeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if inUse {
		return apperr.Conflict("Language with this code already exists.")
	}

	inUse, err = s.store.NameInUse(ctx, name, excludeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if inUse {
		return apperr.Conflict("Language with this name already exists.")
	}

	return nil
}
