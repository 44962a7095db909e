package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ParseUserID(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("right"), 1)
	assert.NoError(t, err)

	_, err = ParseUserID([]byte("wrong"), token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := ParseUserID([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
