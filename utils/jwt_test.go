package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(7, "admin", "secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "admin", "secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenTTL(t *testing.T) {
	claims := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
	ttl := TokenTTL(claims)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	// просроченный токен — нулевой TTL
	claims["exp"] = float64(time.Now().Add(-time.Hour).Unix())
	assert.Equal(t, time.Duration(0), TokenTTL(claims))

	// без exp — нулевой TTL
	assert.Equal(t, time.Duration(0), TokenTTL(jwt.MapClaims{}))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("parool123")
	require.NoError(t, err)
	assert.NotEqual(t, "parool123", hash)
	assert.True(t, CheckPasswordHash("parool123", hash))
	assert.False(t, CheckPasswordHash("vale", hash))
}
