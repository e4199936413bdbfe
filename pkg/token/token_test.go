package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("u1", secret, time.Minute)
	require.NoError(t, err)

	userID, err := VerifyAccessToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAccessTokenExpired(t *testing.T) {
	tok, err := GenerateAccessToken("u1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(tok, secret)
	assert.Error(t, err)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken("u1", secret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(tok, []byte("other"))
	assert.Error(t, err)
}

func TestRefreshTokenHashVerification(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)

	hash := HashRefreshToken(tok)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken("forged", hash))
}
