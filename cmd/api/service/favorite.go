package service

import (
	"context"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// FavoriteStore is the persistence surface for favorite-game links
type FavoriteStore interface {
	ListByUser(ctx context.Context, userProfileID models.ID) ([]*models.FavoriteGameDetail, error)
	Exists(ctx context.Context, userProfileID, gameID models.ID) (bool, error)
	Insert(ctx context.Context, f *models.UserFavoriteGame) error
	Delete(ctx context.Context, userProfileID, gameID models.ID) (bool, error)
}

// ProfileLookup resolves user profile existence for cross-resource checks
type ProfileLookup interface {
	GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error)
}

// GameLookup resolves game existence for cross-resource checks
type GameLookup interface {
	GetByID(ctx context.Context, id models.ID) (*models.Game, error)
}

// FavoriteService links user profiles to games. Both endpoints of the link
// must exist and be live; the pair is unique.
type FavoriteService struct {
	store    FavoriteStore
	profiles ProfileLookup
	games    GameLookup
	log      *logger.Logger
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(store FavoriteStore, profiles ProfileLookup, games GameLookup, log *logger.Logger) *FavoriteService {
	return &FavoriteService{store: store, profiles: profiles, games: games, log: log}
}

// List returns a user's favorite games with their catalog names
func (s *FavoriteService) List(ctx context.Context, userProfileID models.ID) ([]*models.FavoriteGameDetail, error) {
	if err := s.requireProfile(ctx, userProfileID); err != nil {
		return nil, err
	}

	favorites, err := s.store.ListByUser(ctx, userProfileID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return favorites, nil
}

// Add links a game to a user's favorites
func (s *FavoriteService) Add(ctx context.Context, userProfileID, gameID models.ID) (*models.UserFavoriteGame, error) {
	if err := s.requireProfile(ctx, userProfileID); err != nil {
		return nil, err
	}
	if err := s.requireGame(ctx, gameID); err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, userProfileID, gameID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("Game is already in favorites")
	}

	f := &models.UserFavoriteGame{UserProfileID: userProfileID, GameID: gameID}
	if err := s.store.Insert(ctx, f); err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("favorite game added", "user_profile_id", userProfileID, "game_id", gameID)
	return f, nil
}

// Remove unlinks a game from a user's favorites. The link row is removed
// outright; favorites carry no tombstone.
func (s *FavoriteService) Remove(ctx context.Context, userProfileID, gameID models.ID) error {
	if err := s.requireProfile(ctx, userProfileID); err != nil {
		return err
	}

	removed, err := s.store.Delete(ctx, userProfileID, gameID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !removed {
		return apperr.NotFound("Favorite game not found")
	}

	s.log.Info("favorite game removed", "user_profile_id", userProfileID, "game_id", gameID)
	return nil
}

func (s *FavoriteService) requireProfile(ctx context.Context, id models.ID) error {
	u, err := s.profiles.GetByID(ctx, id, false)
	if err != nil {
		return apperr.Internal(err)
	}
	if u == nil {
		return apperr.NotFound("User profile not found")
	}
	return nil
}

func (s *FavoriteService) requireGame(ctx context.Context, id models.ID) error {
	g, err := s.games.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if g == nil {
		return apperr.NotFound("Game not found")
	}
	return nil
}
