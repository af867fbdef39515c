package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetPassword(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("segredo123"))

	// Only a hash is stored, and the change is timestamped.
	assert.NotEqual(t, "segredo123", user.Password)
	assert.NotEmpty(t, user.Password)
	require.NotNil(t, user.PasswordUpdatedAt)

	assert.True(t, user.ComparePassword("segredo123"))
	assert.False(t, user.ComparePassword("Segredo123"))
	assert.False(t, user.ComparePassword(""))
}

func TestUserSetPasswordRehashes(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("senha-um"))
	firstHash := user.Password

	require.NoError(t, user.SetPassword("senha-dois"))
	assert.NotEqual(t, firstHash, user.Password)
	assert.False(t, user.ComparePassword("senha-um"))
	assert.True(t, user.ComparePassword("senha-dois"))
}

func TestAdminComparePassword(t *testing.T) {
	var admin Admin
	require.NoError(t, admin.SetPassword("admin123"))

	assert.True(t, admin.ComparePassword("admin123"))
	assert.False(t, admin.ComparePassword("admin124"))
}

func TestUserViewOmitsPassword(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("segredo123"))
	user.Name = "Maria"
	user.Email = "maria@example.com"

	view := user.View()
	assert.Equal(t, "Maria", view.Name)
	assert.Equal(t, "maria@example.com", view.Email)
}
