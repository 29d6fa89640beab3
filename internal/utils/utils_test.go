package utils

import (
    "testing"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
    hash, err := HashPassword("s3cret", bcrypt.MinCost)
    require.NoError(t, err)

    assert.True(t, VerifyPassword(hash, "s3cret"))
    assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestAccessTokenCarriesClaims(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 42, "USER", 15)
    require.NoError(t, err)

    tok, err := jwt.Parse(at.Token, func(*jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    })
    require.NoError(t, err)
    require.True(t, tok.Valid)

    claims, ok := tok.Claims.(jwt.MapClaims)
    require.True(t, ok)
    assert.Equal(t, float64(42), claims["sub"])
    assert.Equal(t, "USER", claims["role"])
}

func TestHashRefreshRawIsDeterministic(t *testing.T) {
    r1, err := NewRefreshToken(7)
    require.NoError(t, err)
    r2, err := NewRefreshToken(7)
    require.NoError(t, err)

    assert.NotEqual(t, r1.Raw, r2.Raw)
    assert.Equal(t, HashRefreshRaw(r1.Raw), HashRefreshRaw(r1.Raw))
    assert.NotEqual(t, HashRefreshRaw(r1.Raw), HashRefreshRaw(r2.Raw))
    assert.Len(t, HashRefreshRaw(r1.Raw), 64)
}
