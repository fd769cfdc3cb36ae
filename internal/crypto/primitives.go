// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
)

// service is the default implementation of [Service].
type service struct{}

// NewService constructs a [Service] backed by the fixed algorithm set
// spec.md §4.1 mandates.
func NewService() Service {
	return &service{}
}

// Hash implements [Service].
func (s *service) Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// EncryptSymmetric implements [Service]. The output layout — IV ‖
// ciphertext ‖ tag — lets DecryptSymmetric split the blob without a
// separate length field, the same nonce-prepend convention used to wrap a
// data-encryption key under a password-derived key elsewhere in this
// codebase.
func (s *service) EncryptSymmetric(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: new gcm: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("crypto: generate iv: %w", err)
	}

	// Seal appends the tag to the ciphertext itself, so iv‖Seal(...) is
	// already IV ‖ ciphertext ‖ tag.
	sealed := gcm.Seal(iv, iv, plaintext, nil)
	return sealed, nil
}

// DecryptSymmetric implements [Service]. Every failure — short blob, wrong
// key, tampered ciphertext — collapses to ErrCryptoFailure so a caller
// cannot use error type as a decryption oracle.
func (s *service) DecryptSymmetric(key, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrCryptoFailure
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrCryptoFailure
	}

	ivSize := gcm.NonceSize()
	if len(blob) < ivSize {
		return nil, ErrCryptoFailure
	}

	iv, ciphertext := blob[:ivSize], blob[ivSize:]
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrCryptoFailure
	}

	return plaintext, nil
}

// Sign implements [Service]. ecdsa.SignASN1's DER output is not what the
// wire format wants (spec.md §6 fixes a raw 64-byte r‖s encoding), so r and
// s are extracted and each left-padded to 32 bytes independently.
func (s *service) Sign(priv *ecdsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)

	r, sVal, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: sign: %w", err)
	}

	out := make([]byte, 64)
	r.FillBytes(out[:32])
	sVal.FillBytes(out[32:])
	return out, nil
}

// Verify implements [Service].
func (s *service) Verify(pub *ecdsa.PublicKey, msg, sig []byte) bool {
	if len(sig) != 64 {
		return false
	}

	r := new(big.Int).SetBytes(sig[:32])
	sVal := new(big.Int).SetBytes(sig[32:])

	digest := sha256.Sum256(msg)
	return ecdsa.Verify(pub, digest[:], r, sVal)
}

// RandomBytes implements [Service].
func (s *service) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("crypto: read random bytes: %w", err)
	}
	return buf, nil
}

// curve is the fixed curve every NearBytes volume signs on. Pulled out as a
// package var so DeriveKeys and any future curve-aware helper share one
// source of truth.
var curve = elliptic.P256()
