// Package blob implements the encrypt-on-write and decrypt-on-read halves
// of a single file body: generating and using the fresh per-file key,
// authenticated encryption of the body, and rehash verification against
// the content address recorded in the owning event.
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/store"
	"github.com/nearbytes/nearbytes/models"
)

const perFileKeySize = 32

// Engine implements the per-file body encryption and decryption spec-level
// "Blob Engine" component. It holds no state beyond the crypto capability
// it is built from.
type Engine struct {
	crypto crypto.Service
}

// NewEngine constructs an [Engine] backed by cryptoSvc.
func NewEngine(cryptoSvc crypto.Service) *Engine {
	return &Engine{crypto: cryptoSvc}
}

// Encrypt generates a fresh per-file key, encrypts plaintext under it, and
// returns the ciphertext alongside the key. The caller is responsible for
// writing ciphertext to the channel (to obtain its content address) and for
// wrapping perFileKey under the volume's master key before discarding it.
func (e *Engine) Encrypt(plaintext []byte) (ciphertext, perFileKey []byte, err error) {
	perFileKey, err = e.crypto.RandomBytes(perFileKeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("blob: generate per-file key: %w", err)
	}

	ciphertext, err = e.crypto.EncryptSymmetric(perFileKey, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("blob: encrypt body: %w", err)
	}

	return ciphertext, perFileKey, nil
}

// Decrypt implements the read path: unwrap the per-file key under
// masterKey, fetch and rehash-verify the ciphertext via ch, then decrypt.
func (e *Engine) Decrypt(ctx context.Context, ch channel.Store, masterKey crypto.MasterKey, payload models.EventPayload) ([]byte, error) {
	perFileKey, err := e.crypto.DecryptSymmetric(masterKey[:], payload.EncryptedKey)
	if err != nil {
		return nil, crypto.ErrCryptoFailure
	}

	ciphertext, err := ch.ReadBlob(ctx, payload.Hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBlobMissing
		}
		if errors.Is(err, channel.ErrCorruptBlob) {
			return nil, ErrCorruptBlob
		}
		return nil, fmt.Errorf("blob: read blob: %w", err)
	}

	plaintext, err := e.crypto.DecryptSymmetric(perFileKey, ciphertext)
	if err != nil {
		return nil, crypto.ErrCryptoFailure
	}

	return plaintext, nil
}
