package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates an active user with a hashed password", func(t *testing.T) {
		user, err := NewUser(companyID, "Inspector@Example.com", "s3cret-pass", RoleInspector)

		require.NoError(t, err)
		assert.Equal(t, companyID, user.CompanyID)
		assert.Equal(t, "inspector@example.com", user.Email)
		assert.Equal(t, RoleInspector, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, user.VerifyPassword("s3cret-pass"))
		assert.False(t, user.VerifyPassword("wrong-pass"))
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "two@@example.com", "a b@example.com"} {
			_, err := NewUser(companyID, email, "s3cret-pass", RoleInspector)
			assert.Error(t, err, "email %q", email)
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser(companyID, "user@example.com", "short", RoleInspector)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser(companyID, "user@example.com", "s3cret-pass", Role("ADMIN"))
		assert.Error(t, err)
	})
}

func TestUser_ChangeRole(t *testing.T) {
	user, err := NewUser(uuid.New(), "user@example.com", "s3cret-pass", RoleCustomer)
	require.NoError(t, err)
	user.ClearDomainEvents()

	t.Run("changes to a known role", func(t *testing.T) {
		require.NoError(t, user.ChangeRole(RoleSupplier))
		assert.Equal(t, RoleSupplier, user.Role)
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		err := user.ChangeRole(Role("ROOT"))
		assert.Error(t, err)
		assert.Equal(t, RoleSupplier, user.Role)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		user.ClearDomainEvents()
		require.NoError(t, user.ChangeRole(RoleSupplier))
		assert.Empty(t, user.GetDomainEvents())
	})
}

func TestUser_Lockout(t *testing.T) {
	newUser := func(t *testing.T) *User {
		user, err := NewUser(uuid.New(), "user@example.com", "s3cret-pass", RoleInspector)
		require.NoError(t, err)
		return user
	}

	t.Run("locks after the configured number of failures", func(t *testing.T) {
		user := newUser(t)

		assert.False(t, user.RecordLoginFailure(3, time.Minute))
		assert.False(t, user.RecordLoginFailure(3, time.Minute))
		assert.True(t, user.CanLogin())

		assert.True(t, user.RecordLoginFailure(3, time.Minute))
		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("successful login clears failure state", func(t *testing.T) {
		user := newUser(t)
		user.RecordLoginFailure(1, time.Minute)
		require.True(t, user.IsLocked())

		user.RecordLoginSuccess("10.0.0.1")

		assert.False(t, user.IsLocked())
		assert.Zero(t, user.FailedAttempts)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
		require.NotNil(t, user.LastLoginAt)
	})

	t.Run("deactivated user cannot login", func(t *testing.T) {
		user := newUser(t)
		require.NoError(t, user.Deactivate())
		assert.False(t, user.CanLogin())
	})
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser(uuid.New(), "user@example.com", "old-password", RoleInspector)
	require.NoError(t, err)

	t.Run("requires the current password", func(t *testing.T) {
		err := user.ChangePassword("wrong-password", "new-password")
		assert.Error(t, err)
		assert.True(t, user.VerifyPassword("old-password"))
	})

	t.Run("replaces the hash", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("old-password", "new-password"))
		assert.True(t, user.VerifyPassword("new-password"))
		assert.False(t, user.VerifyPassword("old-password"))
	})
}
