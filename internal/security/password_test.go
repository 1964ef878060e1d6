package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// A wrong password is a clean false, not an error.
	ok, err = VerifyPassword("wrong-pass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestVerifyPasswordBadHash(t *testing.T) {
	_, err := VerifyPassword("anything", []byte("not-a-bcrypt-hash"))
	assert.Error(t, err)
}
