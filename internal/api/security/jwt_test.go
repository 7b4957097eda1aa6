package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/api/models"
)

const testSecret = "unit-test-secret-key-that-is-long-enough"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       "7f8d7a4e-95b5-4f6a-9d0a-0f2f56a3f9d1",
		Username: "reader",
		Role:     models.RoleModerator,
	}

	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, models.RoleModerator, claims.Role)
	assert.False(t, claims.IsStaff)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: "id", Username: "reader", Role: models.RoleUser}
	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-completely-different-secret-key-here")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	user := &models.User{ID: "id", Username: "reader", Role: models.RoleUser}
	token, err := GenerateToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testSecret)
	assert.Error(t, err)
}
