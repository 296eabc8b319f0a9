package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	first, err := GeneratePassword()
	require.NoError(t, err)
	second, err := GeneratePassword()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestHashAndCompare(t *testing.T) {
	plaintext, err := GeneratePassword()
	require.NoError(t, err)

	hash, err := Hash(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, hash)

	assert.True(t, Compare(hash, plaintext))
	assert.False(t, Compare(hash, "wrong-password"))
}
