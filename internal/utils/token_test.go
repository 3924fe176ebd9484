package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenKey(t *testing.T) {
	first, err := GenerateTokenKey()
	require.NoError(t, err)
	second, err := GenerateTokenKey()
	require.NoError(t, err)

	assert.Len(t, first, TokenKeyLength)
	assert.True(t, IsValidTokenKey(first))
	assert.NotEqual(t, first, second)
}

func TestIsValidTokenKey(t *testing.T) {
	assert.False(t, IsValidTokenKey(""))
	assert.False(t, IsValidTokenKey("short"))
	assert.False(t, IsValidTokenKey(strings.Repeat("z", TokenKeyLength)))
	assert.True(t, IsValidTokenKey(strings.Repeat("a1", TokenKeyLength/2)))
}
