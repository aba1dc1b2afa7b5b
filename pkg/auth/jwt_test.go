package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/storefront/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	config.Set("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user@example.com", "user")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.Set("JWT_SECRET", "secret-one")
	token, err := GenerateToken(1, "a@b.co", "user")
	require.NoError(t, err)

	config.Set("JWT_SECRET", "secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)

	config.Set("JWT_SECRET", "secret-one")
	_, err = ValidateToken(token)
	assert.NoError(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
