package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("s3cret-pass")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, hasher.Verify("s3cret-pass", hash))
	assert.False(t, hasher.Verify("wrong-pass", hash))
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
