package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	r, g, b := HexToRGB("#ff8000")
	assert.Equal(t, 255, r)
	assert.Equal(t, 128, g)
	assert.Equal(t, 0, b)

	r, g, b = HexToRGB("garbage")
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 0, b)
}

func TestJwtTokenRoundTrip(t *testing.T) {
	key := []byte("test-secret-key")
	identity := uuid.NewString()

	token, err := CreateJwtToken(identity, "alice", key, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := VerifyToken(token, key)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity)
	assert.Equal(t, "alice", claims.Name)

	_, err = VerifyToken(token, []byte("wrong-key"))
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	key := []byte("test-secret-key")

	token, err := CreateJwtToken(uuid.NewString(), "bob", key, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = VerifyToken(token, key)
	assert.Error(t, err)
}
