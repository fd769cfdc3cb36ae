package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/store"
	"github.com/nearbytes/nearbytes/models"
)

func TestEncrypt_ProducesDistinctCiphertextAndKeyEachCall(t *testing.T) {
	engine := NewEngine(crypto.NewService())

	ct1, key1, err := engine.Encrypt([]byte("file contents"))
	require.NoError(t, err)
	ct2, key2, err := engine.Encrypt([]byte("file contents"))
	require.NoError(t, err)

	assert.NotEqual(t, ct1, ct2)
	assert.NotEqual(t, key1, key2)
	assert.Len(t, key1, perFileKeySize)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	cryptoSvc := crypto.NewService()
	engine := NewEngine(cryptoSvc)
	ch := channel.New(store.NewMemoryBackend(), cryptoSvc)
	ctx := context.Background()

	_, master, err := cryptoSvc.DeriveKeys("volume secret for blob test")
	require.NoError(t, err)

	plaintext := []byte("the contents of a.txt")
	ciphertext, perFileKey, err := engine.Encrypt(plaintext)
	require.NoError(t, err)

	hash, err := ch.WriteBlob(ctx, ciphertext)
	require.NoError(t, err)

	wrappedKey, err := cryptoSvc.EncryptSymmetric(master[:], perFileKey)
	require.NoError(t, err)

	payload := models.EventPayload{
		Type:         models.CreateFile,
		FileName:     "a.txt",
		Hash:         hash,
		EncryptedKey: wrappedKey,
	}

	got, err := engine.Decrypt(ctx, ch, master, payload)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecrypt_WrongMasterKeyFails(t *testing.T) {
	cryptoSvc := crypto.NewService()
	engine := NewEngine(cryptoSvc)
	ch := channel.New(store.NewMemoryBackend(), cryptoSvc)
	ctx := context.Background()

	_, master, err := cryptoSvc.DeriveKeys("volume secret one")
	require.NoError(t, err)
	_, otherMaster, err := cryptoSvc.DeriveKeys("volume secret two")
	require.NoError(t, err)

	ciphertext, perFileKey, err := engine.Encrypt([]byte("data"))
	require.NoError(t, err)
	hash, err := ch.WriteBlob(ctx, ciphertext)
	require.NoError(t, err)
	wrappedKey, err := cryptoSvc.EncryptSymmetric(master[:], perFileKey)
	require.NoError(t, err)

	payload := models.EventPayload{Hash: hash, EncryptedKey: wrappedKey}

	_, err = engine.Decrypt(ctx, ch, otherMaster, payload)
	assert.ErrorIs(t, err, crypto.ErrCryptoFailure)
}

func TestDecrypt_MissingBlob(t *testing.T) {
	cryptoSvc := crypto.NewService()
	engine := NewEngine(cryptoSvc)
	ch := channel.New(store.NewMemoryBackend(), cryptoSvc)
	ctx := context.Background()

	_, master, err := cryptoSvc.DeriveKeys("volume secret for missing blob")
	require.NoError(t, err)

	perFileKey, err := cryptoSvc.RandomBytes(32)
	require.NoError(t, err)
	wrappedKey, err := cryptoSvc.EncryptSymmetric(master[:], perFileKey)
	require.NoError(t, err)

	payload := models.EventPayload{
		Hash:         "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b85",
		EncryptedKey: wrappedKey,
	}

	_, err = engine.Decrypt(ctx, ch, master, payload)
	assert.ErrorIs(t, err, ErrBlobMissing)
}

func TestDecrypt_CorruptBlobDetected(t *testing.T) {
	cryptoSvc := crypto.NewService()
	engine := NewEngine(cryptoSvc)
	backend := store.NewMemoryBackend()
	ch := channel.New(backend, cryptoSvc)
	ctx := context.Background()

	_, master, err := cryptoSvc.DeriveKeys("volume secret for corrupt blob")
	require.NoError(t, err)

	ciphertext, perFileKey, err := engine.Encrypt([]byte("original data"))
	require.NoError(t, err)
	hash, err := ch.WriteBlob(ctx, ciphertext)
	require.NoError(t, err)
	wrappedKey, err := cryptoSvc.EncryptSymmetric(master[:], perFileKey)
	require.NoError(t, err)

	require.NoError(t, backend.WriteFile(ctx, store.BlockPath(hash), []byte("tampered bytes of same general shape")))

	payload := models.EventPayload{Hash: hash, EncryptedKey: wrappedKey}
	_, err = engine.Decrypt(ctx, ch, master, payload)
	assert.ErrorIs(t, err, ErrCorruptBlob)
}
