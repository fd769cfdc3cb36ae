// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/ecdsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_service_mock.go -package=mock

// Keypair is the ECDSA P-256 signing keypair derived from a volume secret.
// The public key, hex-encoded, is the volume id.
type Keypair struct {
	Private *ecdsa.PrivateKey
	Public  *ecdsa.PublicKey
}

// MasterKey is the 32-byte symmetric key derived alongside the signing
// keypair. It wraps (and only wraps) per-file keys; it never encrypts file
// bodies directly.
type MasterKey [32]byte

// Service is the cryptographic capability surface the rest of the volume
// engine is built against. Every method's algorithm is fixed by spec.md §4.1
// — implementations MUST match bit-for-bit, since two clients sharing only
// a secret must interoperate without ever comparing notes on which library
// they used.
//
// Service is an interface (rather than free functions) so tests can inject
// a deterministic double — e.g. one with fixed RandomBytes output — to make
// event ids and ciphertexts reproducible in assertions.
type Service interface {
	// Hash returns SHA-256(data).
	Hash(data []byte) [32]byte

	// EncryptSymmetric encrypts plaintext under key (must be 32 bytes) with
	// AES-256-GCM and a fresh random 12-byte IV. The returned slice is
	// IV ‖ ciphertext ‖ 16-byte tag. No additional authenticated data is
	// used.
	EncryptSymmetric(key []byte, plaintext []byte) ([]byte, error)

	// DecryptSymmetric inverts EncryptSymmetric. blob must be at least
	// 12+16 bytes. Returns ErrCryptoFailure on any authentication or shape
	// failure — never a more specific error, per spec.md §7's side-channel
	// policy.
	DecryptSymmetric(key []byte, blob []byte) ([]byte, error)

	// Sign computes a raw 64-byte (r‖s) ECDSA-P256-SHA256 signature over
	// msg.
	Sign(priv *ecdsa.PrivateKey, msg []byte) ([]byte, error)

	// Verify reports whether sig is a valid raw (r‖s) ECDSA-P256-SHA256
	// signature over msg by pub. It never returns an error — a malformed
	// signature is simply not valid.
	Verify(pub *ecdsa.PublicKey, msg []byte, sig []byte) bool

	// DeriveKeys derives the volume's signing keypair and master symmetric
	// key from secret using PBKDF2-HMAC-SHA256 (fixed salt, 100,000
	// iterations, 64 bytes of output split 32/32 — see spec.md §4.1/§6).
	// Returns ErrInvalidSecret if secret is shorter than 8 characters.
	DeriveKeys(secret string) (Keypair, MasterKey, error)

	// RandomBytes returns n cryptographically secure random bytes.
	RandomBytes(n int) ([]byte, error)
}
