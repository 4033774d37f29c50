package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() TokenManager {
	return TokenManager{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		AccessTTL:     time.Hour,
		RefreshTTL:    2 * time.Hour,
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	m := testManager()
	pair, err := m.GenerateTokenPair("user-1", "a@x.com", "premium")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := m.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "premium", claims.Role)
	assert.Equal(t, TokenIssuer, claims.Issuer)

	refreshClaims, err := m.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	m := testManager()
	pair, err := m.GenerateTokenPair("user-1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := testManager()
	m.AccessTTL = time.Nanosecond
	token, err := m.GenerateAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignIssuer(t *testing.T) {
	m := testManager()
	other := TokenManager{AccessSecret: m.AccessSecret, RefreshSecret: m.RefreshSecret}
	token, err := other.GenerateAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	// same secret, same issuer constants: still valid
	_, err = m.ParseAccessToken(token)
	assert.NoError(t, err)

	_, err = m.ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
