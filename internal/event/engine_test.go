package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearbytes/nearbytes/internal/blob"
	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/store"
	"github.com/nearbytes/nearbytes/models"
)

func newTestEngine() (*Engine, channel.Store, crypto.Service) {
	cryptoSvc := crypto.NewService()
	ch := channel.New(store.NewMemoryBackend(), cryptoSvc)
	engine := NewEngine(cryptoSvc, blob.NewEngine(cryptoSvc))
	return engine, ch, cryptoSvc
}

func TestBuildCreate_ThenVerify(t *testing.T) {
	engine, ch, cryptoSvc := newTestEngine()
	ctx := context.Background()

	kp, master, err := cryptoSvc.DeriveKeys("volume secret for event test")
	require.NoError(t, err)
	volumeID := kp.PublicKeyHex()

	eventID, contentAddress, err := engine.BuildCreate(ctx, ch, master, kp.Private, volumeID, "a.txt", []byte("hello world"))
	require.NoError(t, err)
	assert.Len(t, eventID, 64)
	assert.Len(t, contentAddress, 64)

	signed, err := ch.ReadEvent(ctx, volumeID, eventID)
	require.NoError(t, err)
	assert.True(t, engine.Verify(signed, kp.Public))
}

func TestBuildDelete_ThenVerify(t *testing.T) {
	engine, ch, cryptoSvc := newTestEngine()
	ctx := context.Background()

	kp, _, err := cryptoSvc.DeriveKeys("volume secret for delete test")
	require.NoError(t, err)
	volumeID := kp.PublicKeyHex()

	eventID, err := engine.BuildDelete(ctx, ch, kp.Private, volumeID, "a.txt")
	require.NoError(t, err)

	signed, err := ch.ReadEvent(ctx, volumeID, eventID)
	require.NoError(t, err)
	assert.Equal(t, models.DeleteFile, signed.Payload.Type)
	assert.Equal(t, models.ZeroHash, signed.Payload.Hash)
	assert.Empty(t, signed.Payload.EncryptedKey)
	assert.True(t, engine.Verify(signed, kp.Public))
}

func TestVerify_RejectsWrongPublicKey(t *testing.T) {
	engine, ch, cryptoSvc := newTestEngine()
	ctx := context.Background()

	kp, master, err := cryptoSvc.DeriveKeys("volume secret A")
	require.NoError(t, err)
	otherKp, _, err := cryptoSvc.DeriveKeys("volume secret B")
	require.NoError(t, err)

	eventID, _, err := engine.BuildCreate(ctx, ch, master, kp.Private, kp.PublicKeyHex(), "a.txt", []byte("data"))
	require.NoError(t, err)

	signed, err := ch.ReadEvent(ctx, kp.PublicKeyHex(), eventID)
	require.NoError(t, err)

	assert.False(t, engine.Verify(signed, otherKp.Public))
}

func TestVerify_RejectsTamperedPayload(t *testing.T) {
	engine, ch, cryptoSvc := newTestEngine()
	ctx := context.Background()

	kp, master, err := cryptoSvc.DeriveKeys("volume secret for tamper test")
	require.NoError(t, err)

	eventID, _, err := engine.BuildCreate(ctx, ch, master, kp.Private, kp.PublicKeyHex(), "a.txt", []byte("data"))
	require.NoError(t, err)

	signed, err := ch.ReadEvent(ctx, kp.PublicKeyHex(), eventID)
	require.NoError(t, err)

	signed.Payload.FileName = "b.txt"
	assert.False(t, engine.Verify(signed, kp.Public))
}

func TestVerify_RejectsMalformedHash(t *testing.T) {
	engine, _, cryptoSvc := newTestEngine()
	kp, _, err := cryptoSvc.DeriveKeys("volume secret for shape test")
	require.NoError(t, err)

	signed := models.SignedEvent{
		Payload: models.EventPayload{
			Type:     models.CreateFile,
			FileName: "a.txt",
			Hash:     "not-a-valid-hash",
		},
		Signature: []byte("whatever"),
	}

	assert.False(t, engine.Verify(signed, kp.Public))
}

func TestVerify_RejectsEmptyFileName(t *testing.T) {
	engine, _, cryptoSvc := newTestEngine()
	kp, _, err := cryptoSvc.DeriveKeys("volume secret for empty name test")
	require.NoError(t, err)

	signed := models.SignedEvent{
		Payload: models.EventPayload{
			Type: models.CreateFile,
			Hash: models.ZeroHash,
		},
	}

	assert.False(t, engine.Verify(signed, kp.Public))
}

func TestBuildCreate_SamePlaintextYieldsDistinctContentAddresses(t *testing.T) {
	engine, ch, cryptoSvc := newTestEngine()
	ctx := context.Background()

	kp, master, err := cryptoSvc.DeriveKeys("volume secret for dedup test")
	require.NoError(t, err)
	volumeID := kp.PublicKeyHex()

	_, addr1, err := engine.BuildCreate(ctx, ch, master, kp.Private, volumeID, "a.txt", []byte("same content"))
	require.NoError(t, err)
	_, addr2, err := engine.BuildCreate(ctx, ch, master, kp.Private, volumeID, "a.txt", []byte("same content"))
	require.NoError(t, err)

	// Plaintext is identical but each call's fresh per-file key and IV make
	// the ciphertext (and thus its content address) differ.
	assert.NotEqual(t, addr1, addr2)
}
