package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("s3cret-passw0rd", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordRejectsWrongPlaintext(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("battery staple", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRandomPassword(t *testing.T) {
	first, err := RandomPassword()
	require.NoError(t, err)
	second, err := RandomPassword()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
