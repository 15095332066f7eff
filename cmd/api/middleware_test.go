package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessTokenFromHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/users/me", nil)
	r.Header.Set("Authorization", "Bearer some.jwt.token")

	token, viaCookie, err := extractAccessToken(r)
	require.NoError(t, err)
	assert.Equal(t, "some.jwt.token", token)
	assert.False(t, viaCookie)
}

func TestExtractAccessTokenFromCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/users/me", nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie.jwt.token"})

	token, viaCookie, err := extractAccessToken(r)
	require.NoError(t, err)
	assert.Equal(t, "cookie.jwt.token", token)
	assert.True(t, viaCookie)
}

func TestExtractAccessTokenHeaderWinsOverCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/users/me", nil)
	r.Header.Set("Authorization", "Bearer header.jwt.token")
	r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie.jwt.token"})

	token, viaCookie, err := extractAccessToken(r)
	require.NoError(t, err)
	assert.Equal(t, "header.jwt.token", token)
	assert.False(t, viaCookie)
}

func TestExtractAccessTokenMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		r := httptest.NewRequest("GET", "/v1/users/me", nil)
		r.Header.Set("Authorization", header)

		_, _, err := extractAccessToken(r)
		assert.Error(t, err, "header %q should be rejected", header)
	}
}

func TestExtractAccessTokenMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/users/me", nil)

	_, _, err := extractAccessToken(r)
	assert.Error(t, err)
}
