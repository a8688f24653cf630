package service

import (
	"context"
	"testing"

	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(store *fakeProfileStore) *UserProfileService {
	return NewUserProfileService(store, fakeTx{}, logger.New("error", "text"))
}

func seedProfile(t *testing.T, svc *UserProfileService, userName string) *models.UserProfile {
	t.Helper()
	u, err := svc.Create(context.Background(), &models.UserProfile{
		UserKeycloakID: "kc-" + userName,
		UserName:       userName,
	})
	require.NoError(t, err)
	return u
}

func strptr(s string) *string { return &s }

func TestUserProfileCreate_StartsAtVersionZero(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())

	u := seedProfile(t, svc, "ahmet")

	assert.Equal(t, "0", u.RowVersion)
	assert.NotZero(t, u.ID)
}

func TestUserProfileCreate_DuplicateUserName(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	seedProfile(t, svc, "ahmet")

	_, err := svc.Create(context.Background(), &models.UserProfile{
		UserKeycloakID: "kc-other",
		UserName:       "ahmet",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUserProfileUpdate_AdvancesVersionByOne(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	updated, err := svc.Update(context.Background(), u.ID,
		models.UserProfilePatch{Bio: strptr("igl, eu west")}, "0")
	require.NoError(t, err)
	assert.Equal(t, "1", updated.RowVersion)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "igl, eu west", *updated.Bio)

	updated, err = svc.Update(context.Background(), u.ID,
		models.UserProfilePatch{FirstName: strptr("Ahmet")}, "1")
	require.NoError(t, err)
	assert.Equal(t, "2", updated.RowVersion)
}

func TestUserProfileUpdate_StaleVersionLeavesRecordUntouched(t *testing.T) {
	store := newFakeProfileStore()
	svc := newProfileService(store)
	u := seedProfile(t, svc, "ahmet")

	_, err := svc.Update(context.Background(), u.ID,
		models.UserProfilePatch{Bio: strptr("first writer")}, "0")
	require.NoError(t, err)

	// Second writer still holds token "0"
	_, err = svc.Update(context.Background(), u.ID,
		models.UserProfilePatch{Bio: strptr("second writer")}, "0")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindVersionConflict))
	assert.Equal(t, "Resource has been modified by another user", apperr.From(err).Message)

	current, err := svc.Get(context.Background(), u.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "1", current.RowVersion)
	require.NotNil(t, current.Bio)
	assert.Equal(t, "first writer", *current.Bio)
}

func TestUserProfileUpdate_NoFields(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	_, err := svc.Update(context.Background(), u.ID, models.UserProfilePatch{}, "0")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Equal(t, "No data provided", apperr.From(err).Message)
}

func TestUserProfileUpdate_NotFound(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())

	_, err := svc.Update(context.Background(), 42,
		models.UserProfilePatch{Bio: strptr("x")}, "0")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserProfileUpdate_UserNameCollision(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	seedProfile(t, svc, "ahmet")
	other := seedProfile(t, svc, "mehmet")

	_, err := svc.Update(context.Background(), other.ID,
		models.UserProfilePatch{UserName: strptr("ahmet")}, "0")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUserProfileDelete_SetsTombstoneAndAdvancesVersion(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	require.NoError(t, svc.Delete(context.Background(), u.ID, "0"))

	deleted, err := svc.Get(context.Background(), u.ID, true)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
	assert.Equal(t, "1", deleted.RowVersion)

	// Hidden from the live read path
	_, err = svc.Get(context.Background(), u.ID, false)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserProfileDelete_AlreadyDeleted(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	require.NoError(t, svc.Delete(context.Background(), u.ID, "0"))

	err := svc.Delete(context.Background(), u.ID, "1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAlreadyDeleted))
}

func TestUserProfileDelete_StaleVersion(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	err := svc.Delete(context.Background(), u.ID, "7")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindVersionConflict))
}

func TestUserProfileDelete_IsTerminal(t *testing.T) {
	svc := newProfileService(newFakeProfileStore())
	u := seedProfile(t, svc, "ahmet")

	require.NoError(t, svc.Delete(context.Background(), u.ID, "0"))

	// The standard update path refuses tombstoned rows outright
	_, err := svc.Update(context.Background(), u.ID,
		models.UserProfilePatch{Bio: strptr("resurrected")}, "1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestNextRowVersion(t *testing.T) {
	v, err := nextRowVersion("0")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// Past int64 range the counter must keep counting
	v, err = nextRowVersion("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, "9223372036854775808", v)

	_, err = nextRowVersion("not-a-number")
	assert.Error(t, err)
}
