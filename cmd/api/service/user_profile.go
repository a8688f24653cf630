package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
)

// UserProfileStore is the persistence surface the profile service needs.
// Update and SoftDelete are version guarded: they match only the row whose
// row_version still equals expectedVersion.
type UserProfileStore interface {
	GetByID(ctx context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error)
	GetByUserName(ctx context.Context, userName string, includeDeleted bool) (*models.UserProfile, error)
	KeycloakIDInUse(ctx context.Context, keycloakID string, excludeID models.ID) (bool, error)
	UserNameInUse(ctx context.Context, userName string, excludeID models.ID) (bool, error)
	Insert(ctx context.Context, u *models.UserProfile) error
	Update(ctx context.Context, u *models.UserProfile, expectedVersion string) (bool, error)
	SoftDelete(ctx context.Context, id models.ID, now time.Time, expectedVersion, newVersion string) (bool, error)
}

// TxRunner runs a function inside a single transaction. db.DB satisfies it;
// test fakes run the function directly.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserProfileService owns the profile rules: uniqueness of keycloak id and
// username among live rows, and the versioned update protocol.
type UserProfileService struct {
	store UserProfileStore
	tx    TxRunner
	log   *logger.Logger
}

// NewUserProfileService creates a new user profile service
func NewUserProfileService(store UserProfileStore, tx TxRunner, log *logger.Logger) *UserProfileService {
	return &UserProfileService{store: store, tx: tx, log: log}
}

// nextRowVersion increments the string counter. Versions flow through the
// API as strings, so the arithmetic stays in big.Int and never rounds.
func nextRowVersion(current string) (string, error) {
	n, ok := new(big.Int).SetString(current, 10)
	if !ok {
		return "", fmt.Errorf("malformed row version %q", current)
	}
	return n.Add(n, big.NewInt(1)).String(), nil
}

// Get retrieves a profile. includeDeleted exposes tombstoned rows, which
// the admin surface uses.
func (s *UserProfileService) Get(ctx context.Context, id models.ID, includeDeleted bool) (*models.UserProfile, error) {
	u, err := s.store.GetByID(ctx, id, includeDeleted)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User profile not found")
	}
	return u, nil
}

// GetByUserName retrieves a live profile by its unique username
func (s *UserProfileService) GetByUserName(ctx context.Context, userName string) (*models.UserProfile, error) {
	u, err := s.store.GetByUserName(ctx, userName, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User profile not found")
	}
	return u, nil
}

// Create inserts a profile after checking the keycloak id and username are
// free among live rows. The store assigns row version "0".
func (s *UserProfileService) Create(ctx context.Context, u *models.UserProfile) (*models.UserProfile, error) {
	if err := s.checkUnique(ctx, u.UserKeycloakID, u.UserName, 0); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, u); err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("user profile created", "id", u.ID, "user_name", u.UserName)
	return u, nil
}

// Update runs the versioned update protocol inside one transaction:
// read the live row, compare the caller's version token string-exact,
// re-check uniqueness of any changed unique field, then write the full
// field set with the version advanced by one. The UPDATE itself carries
// the id+version guard, so a writer that committed between our read and
// our write turns the write into a no-op and we report the conflict.
func (s *UserProfileService) Update(ctx context.Context, id models.ID, patch models.UserProfilePatch, rowVersion string) (*models.UserProfile, error) {
	if !patch.HasChanges() {
		return nil, apperr.BadRequest("No data provided")
	}

	var updated *models.UserProfile
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.store.GetByID(ctx, id, false)
		if err != nil {
			return apperr.Internal(err)
		}
		if u == nil {
			return apperr.NotFound("User profile not found")
		}
		if u.RowVersion != rowVersion {
			return apperr.VersionConflict()
		}

		expectedVersion := u.RowVersion
		patch.ApplyTo(u)

		if patch.UserKeycloakID != nil || patch.UserName != nil {
			if err := s.checkUnique(ctx, u.UserKeycloakID, u.UserName, id); err != nil {
				return err
			}
		}

		newVersion, err := nextRowVersion(expectedVersion)
		if err != nil {
			return apperr.Internal(err)
		}

		now := time.Now()
		u.UpdatedAt = &now
		u.RowVersion = newVersion

		ok, err := s.store.Update(ctx, u, expectedVersion)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.VersionConflict()
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user profile updated", "id", id, "row_version", updated.RowVersion)
	return updated, nil
}

// Delete soft deletes a profile under the same version protocol as Update.
// Deletion is terminal and still advances the version by one.
func (s *UserProfileService) Delete(ctx context.Context, id models.ID, rowVersion string) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.store.GetByID(ctx, id, true)
		if err != nil {
			return apperr.Internal(err)
		}
		if u == nil {
			return apperr.NotFound("User profile not found")
		}
		if u.DeletedAt != nil {
			return apperr.AlreadyDeleted("User profile is already deleted")
		}
		if u.RowVersion != rowVersion {
			return apperr.VersionConflict()
		}

		newVersion, err := nextRowVersion(u.RowVersion)
		if err != nil {
			return apperr.Internal(err)
		}

		ok, err := s.store.SoftDelete(ctx, id, time.Now(), u.RowVersion, newVersion)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.VersionConflict()
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("user profile deleted", "id", id)
	return nil
}

func (s *UserProfileService) checkUnique(ctx context.Context, keycloakID, userName string, excludeID models.ID) error {
	inUse, err := s.store.KeycloakIDInUse(ctx, keycloakID, excludeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if inUse {
		return apperr.Conflict("A profile for this Keycloak user already exists.")
	}

	inUse, err = s.store.UserNameInUse(ctx, userName, excludeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if inUse {
		return apperr.Conflict("This username is already taken.")
	}

	return nil
}
