package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retriever-essentials/pantry/internal/hash"
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/result"
)

func userFixture() (*AppUserService, *fakeUserStore) {
	users := newFakeUserStore(
		models.AppUser{AppUserID: 1, Email: "admin@pantry.edu", Role: models.RoleAdmin,
			PasswordHash: "x", Enabled: true},
	)
	return NewAppUserService(users), users
}

func TestAddUserHashesPassword(t *testing.T) {
	svc, store := userFixture()

	user := models.AppUser{Email: "new@pantry.edu", Role: models.RoleAuthority, Enabled: true}
	res, err := svc.Add(&user, "hunter22")
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	stored, err := store.FindByEmail("new@pantry.edu")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, "hunter22", stored.PasswordHash)
	require.True(t, hash.CheckPassword(stored.PasswordHash, "hunter22"))
}

func TestAddUserValidationMessages(t *testing.T) {
	svc, _ := userFixture()

	user := models.AppUser{Email: "bad email", Role: "SUPERUSER"}
	res, err := svc.Add(&user, "")
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Email is not valid.")
	require.Contains(t, res.Messages(), "Password is required.")
	require.Contains(t, res.Messages(), "Role must be ADMIN or AUTHORITY.")
}

func TestAddUserDuplicateEmailIsRejected(t *testing.T) {
	svc, _ := userFixture()

	user := models.AppUser{Email: "admin@pantry.edu", Role: models.RoleAuthority}
	res, err := svc.Add(&user, "hunter22")
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Email already in use.")
}

func TestChangePasswordTooShort(t *testing.T) {
	svc, _ := userFixture()

	res, err := svc.ChangePassword(1, "abc")
	require.NoError(t, err)
	require.Contains(t, res.Messages(), "Password must be at least 6 characters.")
}

func TestChangePasswordUnknownUserIsNotFound(t *testing.T) {
	svc, _ := userFixture()

	res, err := svc.ChangePassword(99, "longenough")
	require.NoError(t, err)
	require.Equal(t, result.NotFound, res.Kind())
	require.Contains(t, res.Messages(), "User not found.")
}

func TestDisableAndEnableUser(t *testing.T) {
	svc, store := userFixture()

	res, err := svc.DisableByID(1)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	stored, err := store.FindByID(1)
	require.NoError(t, err)
	require.False(t, stored.Enabled)

	res, err = svc.EnableByID(1)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	stored, err = store.FindByID(1)
	require.NoError(t, err)
	require.True(t, stored.Enabled)
}
