package encoding

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHex64(t *testing.T) {
	valid := "a3f5c1d2e4b6789012345678901234567890123456789012345678901234abcd"
	h, err := NewHex64(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, h.String())

	_, err = NewHex64("too-short")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = NewHex64("A3F5C1D2E4B6789012345678901234567890123456789012345678901234ABCD")
	assert.ErrorIs(t, err, ErrInvalidHash, "uppercase hex must be rejected")
}

func TestEncodeHex64(t *testing.T) {
	digest := sha256.Sum256([]byte("hello"))
	h := EncodeHex64(digest)
	_, err := NewHex64(h.String())
	require.NoError(t, err)
}

