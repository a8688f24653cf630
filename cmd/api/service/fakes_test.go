package service

import (
	"context"
	"strings"
	"time"

	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
)

// fakeTx satisfies TxRunner without a database; the callback runs directly
type fakeTx struct{}

func (fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeProfileStore is an in-memory UserProfileStore honoring the same
// version-guard contract as the pgx repository
type fakeProfileStore struct {
	nextID   models.ID
	profiles map[models.ID]*models.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[models.ID]*models.UserProfile)}
}

func (s *fakeProfileStore) GetByID(_ context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error) {
	u, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	if u.DeletedAt != nil && !includeDeleted {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *fakeProfileStore) GetByUserName(_ context.Context, userName string, includeDeleted bool) (*models.UserProfile, error) {
	for _, u := range s.profiles {
		if u.UserName == userName && (u.DeletedAt == nil || includeDeleted) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeProfileStore) KeycloakIDInUse(_ context.Context, keycloakID string, excludeID models.ID) (bool, error) {
	for _, u := range s.profiles {
		if u.UserKeycloakID == keycloakID && u.DeletedAt == nil && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProfileStore) UserNameInUse(_ context.Context, userName string, excludeID models.ID) (bool, error) {
	for _, u := range s.profiles {
		if u.UserName == userName && u.DeletedAt == nil && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProfileStore) Insert(_ context.Context, u *models.UserProfile) error {
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	u.LastOnline = u.CreatedAt
	u.RowVersion = "0"
	cp := *u
	s.profiles[u.ID] = &cp
	return nil
}

func (s *fakeProfileStore) Update(_ context.Context, u *models.UserProfile, expectedVersion string) (bool, error) {
	cur, ok := s.profiles[u.ID]
	if !ok || cur.DeletedAt != nil || cur.RowVersion != expectedVersion {
		return false, nil
	}
	cp := *u
	s.profiles[u.ID] = &cp
	return true, nil
}

func (s *fakeProfileStore) SoftDelete(_ context.Context, id models.ID, now time.Time, expectedVersion, newVersion string) (bool, error) {
	cur, ok := s.profiles[id]
	if !ok || cur.DeletedAt != nil || cur.RowVersion != expectedVersion {
		return false, nil
	}
	cur.DeletedAt = &now
	cur.UpdatedAt = &now
	cur.RowVersion = newVersion
	return true, nil
}

// fakeLanguageStore is an in-memory LanguageStore with the repository's
// live-row uniqueness semantics and a naive substring search
type fakeLanguageStore struct {
	nextID    models.ID
	languages map[models.ID]*models.Language

	lastParams query.ListParams
}

func newFakeLanguageStore() *fakeLanguageStore {
	return &fakeLanguageStore{languages: make(map[models.ID]*models.Language)}
}

func (s *fakeLanguageStore) live() []*models.Language {
	var out []*models.Language
	for _, l := range s.languages {
		if l.DeletedAt == nil {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out
}

func (s *fakeLanguageStore) List(_ context.Context, params query.ListParams) ([]*models.Language, int, error) {
	s.lastParams = params

	var matched []*models.Language
	for _, l := range s.live() {
		if params.Search == "" ||
			strings.Contains(strings.ToLower(l.Name), strings.ToLower(params.Search)) ||
			strings.Contains(strings.ToLower(l.Code), strings.ToLower(params.Search)) {
			matched = append(matched, l)
		}
	}

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeLanguageStore) ListAll(_ context.Context) ([]*models.Language, error) {
	return s.live(), nil
}

func (s *fakeLanguageStore) GetByID(_ context.Context, id models.ID, includeDeleted bool) (*models.Language, error) {
	l, ok := s.languages[id]
	if !ok {
		return nil, nil
	}
	if l.DeletedAt != nil && !includeDeleted {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *fakeLanguageStore) CodeInUse(_ context.Context, code string, excludeID models.ID) (bool, error) {
	for _, l := range s.languages {
		if l.Code == code && l.DeletedAt == nil && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLanguageStore) NameInUse(_ context.Context, name string, excludeID models.ID) (bool, error) {
	for _, l := range s.languages {
		if l.Name == name && l.DeletedAt == nil && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLanguageStore) Insert(_ context.Context, l *models.Language) error {
	s.nextID++
	l.ID = s.nextID
	l.CreatedAt = time.Now()
	cp := *l
	s.languages[l.ID] = &cp
	return nil
}

func (s *fakeLanguageStore) Update(_ context.Context, l *models.Language) (bool, error) {
	cur, ok := s.languages[l.ID]
	if !ok || cur.DeletedAt != nil {
		return false, nil
	}
	cp := *l
	s.languages[l.ID] = &cp
	return true, nil
}

func (s *fakeLanguageStore) SoftDelete(_ context.Context, id models.ID, now time.Time) (bool, error) {
	cur, ok := s.languages[id]
	if !ok || cur.DeletedAt != nil {
		return false, nil
	}
	cur.DeletedAt = &now
	cur.UpdatedAt = &now
	return true, nil
}

// fakeGameStore backs GameLookup for favorite tests
type fakeGameStore struct {
	games map[models.ID]*models.Game
}

func (s *fakeGameStore) GetByID(_ context.Context, id models.ID) (*models.Game, error) {
	g, ok := s.games[id]
	if !ok || g.DeletedAt != nil {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}
