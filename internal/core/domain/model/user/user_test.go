package user_test

import (
	"testing"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should register with user role", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), " Ann@Example.com", "Ann", "", time.Now())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ann@example.com", u.Email())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.False(t, u.IsAdmin())
	})

	t.Run("should require email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "Ann", "", time.Now())

		require.ErrorIs(t, err, user.ErrEmailIsRequired)
	})
}

func TestUser_PromoteToRider(t *testing.T) {
	t.Run("should promote plain user", func(t *testing.T) {
		u := user.RestoreUser(kernel.NewUUID(), "a@b.c", "", "", user.RoleUser, time.Now())

		u.PromoteToRider()

		assert.Equal(t, user.RoleRider, u.Role())
	})

	t.Run("should keep admin role", func(t *testing.T) {
		u := user.RestoreUser(kernel.NewUUID(), "a@b.c", "", "", user.RoleAdmin, time.Now())

		u.PromoteToRider()

		assert.Equal(t, user.RoleAdmin, u.Role())
	})
}

func TestUser_ChangeRole(t *testing.T) {
	u := user.RestoreUser(kernel.NewUUID(), "a@b.c", "", "", user.RoleUser, time.Now())

	require.NoError(t, u.ChangeRole(user.RoleAdmin))
	assert.True(t, u.IsAdmin())

	err := u.ChangeRole("owner")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, user.RoleAdmin, u.Role())
}
