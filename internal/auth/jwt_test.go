package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret", "profrate", "profrate", time.Hour, 24*time.Hour)
}

func TestGenerateTokens(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42, "student", "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	tok, err := a.ValidateAccessToken(access)
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, "sess-1", claims["sid"])
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	a := newTestAuthenticator()

	_, refresh, err := a.GenerateTokens(42, "student", "sess-1")
	require.NoError(t, err)

	// signed with the refresh secret, must not validate as an access token
	_, err = a.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateRefreshToken(t *testing.T) {
	a := newTestAuthenticator()

	_, refresh, err := a.GenerateTokens(7, "admin", "sess-2")
	require.NoError(t, err)

	tok, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "sess-2", claims["sid"])
	_, hasRole := claims["role"]
	assert.False(t, hasRole, "refresh token must not carry a role")
}

func TestValidateAccessToken_Expired(t *testing.T) {
	a := NewJWTAuthenticator("access-secret", "refresh-secret", "profrate", "profrate", -time.Minute, time.Hour)

	access, _, err := a.GenerateTokens(1, "student", "sess-3")
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(access)
	assert.Error(t, err)
}
