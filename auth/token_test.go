package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
)

func TestCustomerTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: primitive.NewObjectID()}
	token, err := SignCustomerToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestAdminTokenCarriesRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	admin := &models.Admin{ID: primitive.NewObjectID(), Role: models.RoleSuperAdmin}
	token, err := SignAdminToken(admin)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.ID)
	assert.Equal(t, string(models.RoleSuperAdmin), claims.Role)
}

func TestParseTokenRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: primitive.NewObjectID()}
	token, err := SignCustomerToken(user)
	require.NoError(t, err)

	// A token signed under another secret must not verify.
	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := sign(primitive.NewObjectID(), RoleCustomer, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
