package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/fostr-server/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	access, err := j.GenerateAccessToken(42)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	refresh, jti, err := j.GenerateRefreshToken(7)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	gotUser, gotJTI, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, int64(7), gotUser)
	require.Equal(t, jti, gotJTI)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	access, err := j.GenerateAccessToken(1)
	require.NoError(t, err)
	_, _, err = j.ParseRefreshToken(access)
	require.ErrorIs(t, err, model.ErrTokenInvalid)

	refresh, _, err := j.GenerateRefreshToken(1)
	require.NoError(t, err)
	_, err = j.ParseAccessToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret", 0, 0).GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = NewJWT("other", 0, 0).ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", 0, 0)

	s, err := j.sign(1, typeAccess, "", -time.Minute)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(s)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_Garbage(t *testing.T) {
	_, _, err := NewJWT("secret", 0, 0).ParseRefreshToken("not-a-token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestNewJWT_Defaults(t *testing.T) {
	j := NewJWT("secret", 0, -1)
	assert.Equal(t, DefaultAccessTTL, j.accessTTL)
	assert.Equal(t, DefaultRefreshTTL, j.refreshTTL)

	j = NewJWT("secret", time.Minute, time.Hour)
	assert.Equal(t, time.Minute, j.accessTTL)
	assert.Equal(t, time.Hour, j.refreshTTL)
}
