package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptSymmetric_RoundTrip(t *testing.T) {
	svc := NewService()
	key, err := svc.RandomBytes(32)
	require.NoError(t, err)

	plaintext := []byte("the quick brown fox")
	blob, err := svc.EncryptSymmetric(key, plaintext)
	require.NoError(t, err)
	assert.Len(t, blob, 12+len(plaintext)+16)

	got, err := svc.DecryptSymmetric(key, blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptSymmetric_FreshIVPerCall(t *testing.T) {
	svc := NewService()
	key, err := svc.RandomBytes(32)
	require.NoError(t, err)

	b1, err := svc.EncryptSymmetric(key, []byte("same plaintext"))
	require.NoError(t, err)
	b2, err := svc.EncryptSymmetric(key, []byte("same plaintext"))
	require.NoError(t, err)

	assert.False(t, bytes.Equal(b1, b2), "two encryptions of the same plaintext must differ (fresh IV)")
}

func TestDecryptSymmetric_TamperDetection(t *testing.T) {
	svc := NewService()
	key, err := svc.RandomBytes(32)
	require.NoError(t, err)

	blob, err := svc.EncryptSymmetric(key, []byte("integrity matters"))
	require.NoError(t, err)

	tampered := bytes.Clone(blob)
	tampered[len(tampered)-1] ^= 0xFF

	_, err = svc.DecryptSymmetric(key, tampered)
	assert.ErrorIs(t, err, ErrCryptoFailure)
}

func TestDecryptSymmetric_WrongKey(t *testing.T) {
	svc := NewService()
	key1, err := svc.RandomBytes(32)
	require.NoError(t, err)
	key2, err := svc.RandomBytes(32)
	require.NoError(t, err)

	blob, err := svc.EncryptSymmetric(key1, []byte("secret"))
	require.NoError(t, err)

	_, err = svc.DecryptSymmetric(key2, blob)
	assert.ErrorIs(t, err, ErrCryptoFailure)
}

func TestDecryptSymmetric_ShortBlob(t *testing.T) {
	svc := NewService()
	key, err := svc.RandomBytes(32)
	require.NoError(t, err)

	_, err = svc.DecryptSymmetric(key, []byte("short"))
	assert.ErrorIs(t, err, ErrCryptoFailure)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	svc := NewService()
	kp, _, err := svc.DeriveKeys("correct horse battery staple")
	require.NoError(t, err)

	msg := []byte("payload bytes to sign")
	sig, err := svc.Sign(kp.Private, msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64)

	assert.True(t, svc.Verify(kp.Public, msg, sig))
}

func TestVerify_RejectsTamperedMessage(t *testing.T) {
	svc := NewService()
	kp, _, err := svc.DeriveKeys("correct horse battery staple")
	require.NoError(t, err)

	sig, err := svc.Sign(kp.Private, []byte("original"))
	require.NoError(t, err)

	assert.False(t, svc.Verify(kp.Public, []byte("tampered"), sig))
}

func TestVerify_RejectsMalformedSignature(t *testing.T) {
	svc := NewService()
	kp, _, err := svc.DeriveKeys("correct horse battery staple")
	require.NoError(t, err)

	assert.False(t, svc.Verify(kp.Public, []byte("msg"), []byte("too-short")))
}

func TestRandomBytes_LengthAndRandomness(t *testing.T) {
	svc := NewService()

	b1, err := svc.RandomBytes(32)
	require.NoError(t, err)
	b2, err := svc.RandomBytes(32)
	require.NoError(t, err)

	assert.Len(t, b1, 32)
	assert.False(t, bytes.Equal(b1, b2))
}
