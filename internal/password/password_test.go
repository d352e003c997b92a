package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrongpass", hash))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h1, err := Hash("secret123")
	assert.NoError(t, err)
	h2, err := Hash("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("secret123", h1))
	assert.True(t, Verify("secret123", h2))
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, Verify("secret123", ""))
	assert.False(t, Verify("secret123", "not-a-bcrypt-hash"))
}
