package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	tok, err := GenerateAccessToken("secret", "user-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := VerifyAccessToken("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken("secret", "user-1", time.Hour)
	require.NoError(t, err)

	_, err = VerifyAccessToken("other-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	tok, err := GenerateAccessToken("secret", "user-1", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken("secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessTokenGarbage(t *testing.T) {
	_, err := VerifyAccessToken("secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
