package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Collect0r!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Collect0r!pass", hash)

	assert.True(t, VerifyPassword(hash, "Collect0r!pass"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, "collector@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "collector@example.com", claims.Email)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, "collector@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", 42, "collector@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}
