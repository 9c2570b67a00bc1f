package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftalk/shelftalk-server/internal/domain"
)

const testKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-test123",
		Username: "reader1",
		Email:    "reader1@example.com",
	}
}

func TestNewTokenService_InvalidKey(t *testing.T) {
	tests := []struct {
		name   string
		keyHex string
	}{
		{"empty", ""},
		{"too short", "abcd"},
		{"right length, not hex", strings.Repeat("z", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.keyHex, time.Hour)
			assert.Error(t, err)
		})
	}
}

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, 5*time.Hour)
	require.NoError(t, err)

	user := testUser()
	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)

	// Subject carries the username.
	assert.Equal(t, "reader1", claims.Subject)
	assert.Equal(t, "user-test123", claims.UserID)
	assert.True(t, strings.HasPrefix(claims.TokenID, "token-"))
	assert.WithinDuration(t, time.Now().Add(5*time.Hour), claims.Expiration, time.Minute)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	// Negative duration produces an already-expired token with a valid signature.
	svc, err := NewTokenService(testKeyHex, -time.Minute)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_WrongKey(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, time.Hour)
	require.NoError(t, err)

	otherKey := strings.Repeat("ab", 32)
	other, err := NewTokenService(otherKey, time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_Malformed(t *testing.T) {
	svc, err := NewTokenService(testKeyHex, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "v4.local.not-a-token"} {
		_, err := svc.VerifyAccessToken(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("longpass1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "longpass1")

	ok, err := VerifyPassword(hash, "longpass1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrongpass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	// Same input, different salt, different hash.
	h1, err := HashPassword("longpass1")
	require.NoError(t, err)
	h2, err := HashPassword("longpass1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-an-encoded-hash", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}
