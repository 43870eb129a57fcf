package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "s3cret-pw", "hi there")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pw", u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"))
	assert.True(t, u.CheckPassword("s3cret-pw"))
	assert.False(t, u.CheckPassword("wrong-pw"))
}

func TestNewUserRoleFlags(t *testing.T) {
	u, err := NewUser("bob", "bob@example.com", "s3cret-pw", "")
	require.NoError(t, err)

	assert.True(t, u.IsActive)
	assert.False(t, u.IsStaff)
	assert.False(t, u.IsAdmin)
}

func TestNewAdminRoleFlags(t *testing.T) {
	u, err := NewAdmin("root", "root@example.com", "s3cret-pw", "")
	require.NoError(t, err)

	assert.True(t, u.IsActive)
	assert.True(t, u.IsStaff)
	assert.True(t, u.IsAdmin)
}

func TestNewUserRejectsInvalidInput(t *testing.T) {
	_, err := NewUser("alice", "not-an-email", "s3cret-pw", "")
	assert.Error(t, err)

	_, err = NewUser("al", "alice@example.com", "s3cret-pw", "")
	assert.Error(t, err)
}

func TestSetPasswordReplacesHash(t *testing.T) {
	u, err := NewUser("carol", "carol@example.com", "old-pw", "")
	require.NoError(t, err)
	oldHash := u.PasswordHash

	require.NoError(t, u.SetPassword("new-pw"))

	assert.NotEqual(t, oldHash, u.PasswordHash)
	assert.True(t, u.CheckPassword("new-pw"))
	assert.False(t, u.CheckPassword("old-pw"))
}

func TestSerializeOmitsSecrets(t *testing.T) {
	u, err := NewAdmin("dave", "dave@example.com", "s3cret-pw", "bio text")
	require.NoError(t, err)
	u.ID = 42

	out := u.Serialize()

	assert.Equal(t, uint(42), out["id"])
	assert.Equal(t, "dave", out["username"])
	assert.Equal(t, "dave@example.com", out["email"])
	assert.Equal(t, "bio text", out["bio"])
	assert.Len(t, out, 4)
	assert.NotContains(t, out, "password_hash")
	assert.NotContains(t, out, "is_admin")
	assert.NotContains(t, out, "is_staff")
}
