// Package event implements the spec-level "Event Engine": building and
// signing CREATE_FILE/DELETE_FILE events (encrypting the file body and
// wrapping its key along the way) and verifying events read back from a
// channel.
package event

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/nearbytes/nearbytes/internal/blob"
	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/encoding"
	"github.com/nearbytes/nearbytes/internal/wire"
	"github.com/nearbytes/nearbytes/models"
)

// Engine builds, signs, and verifies events for one volume. It holds no
// volume-specific state; every method takes the keys and channel it needs.
type Engine struct {
	crypto crypto.Service
	blob   *blob.Engine
}

// NewEngine constructs an [Engine].
func NewEngine(cryptoSvc crypto.Service, blobEngine *blob.Engine) *Engine {
	return &Engine{crypto: cryptoSvc, blob: blobEngine}
}

// BuildCreate implements spec's buildCreate: it encrypts plaintext under a
// fresh per-file key, writes the ciphertext blob before the referencing
// event (so a reader who observes the event can always find its blob),
// wraps the per-file key under masterKey, signs the resulting payload with
// priv, and writes the signed event to ch under volumeID.
//
// Returns the new event's id and the blob's content address.
func (e *Engine) BuildCreate(ctx context.Context, ch channel.Store, masterKey crypto.MasterKey, priv *ecdsa.PrivateKey, volumeID, filename string, plaintext []byte) (eventID, contentAddress string, err error) {
	ciphertext, perFileKey, err := e.blob.Encrypt(plaintext)
	if err != nil {
		return "", "", fmt.Errorf("event: encrypt body: %w", err)
	}

	blobHash, err := ch.WriteBlob(ctx, ciphertext)
	if err != nil {
		return "", "", fmt.Errorf("event: write blob: %w", err)
	}

	wrappedKey, err := e.crypto.EncryptSymmetric(masterKey[:], perFileKey)
	if err != nil {
		return "", "", fmt.Errorf("event: wrap per-file key: %w", err)
	}

	payload := models.EventPayload{
		Type:         models.CreateFile,
		FileName:     filename,
		Hash:         blobHash,
		EncryptedKey: wrappedKey,
	}

	signed, err := e.sign(priv, payload)
	if err != nil {
		return "", "", err
	}

	eventID, err = ch.WriteEvent(ctx, volumeID, signed)
	if err != nil {
		return "", "", fmt.Errorf("event: write event: %w", err)
	}

	return eventID, blobHash, nil
}

// BuildDelete implements spec's buildDelete: a tombstone event for
// filename, with no blob and no wrapped key.
func (e *Engine) BuildDelete(ctx context.Context, ch channel.Store, priv *ecdsa.PrivateKey, volumeID, filename string) (eventID string, err error) {
	payload := models.EventPayload{
		Type:     models.DeleteFile,
		FileName: filename,
		Hash:     models.ZeroHash,
		// EncryptedKey must be a non-nil empty slice, not nil: encoding/json
		// renders a nil []byte as null but an empty one as "", and the wire
		// form other implementations produce for a tombstone is "".
		EncryptedKey: []byte{},
	}

	signed, err := e.sign(priv, payload)
	if err != nil {
		return "", err
	}

	eventID, err = ch.WriteEvent(ctx, volumeID, signed)
	if err != nil {
		return "", fmt.Errorf("event: write event: %w", err)
	}
	return eventID, nil
}

func (e *Engine) sign(priv *ecdsa.PrivateKey, payload models.EventPayload) (models.SignedEvent, error) {
	signingInput, err := wire.SerializePayload(payload)
	if err != nil {
		return models.SignedEvent{}, fmt.Errorf("event: serialize payload: %w", err)
	}

	sig, err := e.crypto.Sign(priv, signingInput)
	if err != nil {
		return models.SignedEvent{}, fmt.Errorf("event: sign payload: %w", err)
	}

	return models.SignedEvent{Payload: payload, Signature: sig}, nil
}

// Verify implements spec's verify: it checks the payload's shape (valid
// type, non-empty filename, well-formed hash) before checking the
// signature itself, so a structurally invalid event is rejected without
// ever reaching the crypto layer.
func (e *Engine) Verify(signed models.SignedEvent, pub *ecdsa.PublicKey) bool {
	if !validPayloadShape(signed.Payload) {
		return false
	}

	signingInput, err := wire.SerializePayload(signed.Payload)
	if err != nil {
		return false
	}

	return e.crypto.Verify(pub, signingInput, signed.Signature)
}

func validPayloadShape(payload models.EventPayload) bool {
	switch payload.Type {
	case models.CreateFile, models.DeleteFile:
	default:
		return false
	}

	if payload.FileName == "" {
		return false
	}

	if _, err := encoding.NewHex64(payload.Hash); err != nil {
		return false
	}

	if payload.Type == models.DeleteFile && payload.Hash != models.ZeroHash {
		return false
	}

	return true
}
