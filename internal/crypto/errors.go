package crypto

import "errors"

var (
	// ErrCryptoFailure is the single opaque error returned for every
	// decryption failure: short blob, wrong key, or AEAD tag mismatch.
	// Signature checks do not return it: Verify reports a bad signature as
	// false. Per spec.md §7's side-channel policy, callers must not be able
	// to distinguish "wrong key" from "bad tag" — they all collapse to this
	// one sentinel.
	ErrCryptoFailure = errors.New("crypto: operation failed")

	// ErrInvalidSecret is returned by DeriveKeys when the secret is shorter
	// than the 8-character minimum spec.md §3 requires.
	ErrInvalidSecret = errors.New("crypto: secret must be at least 8 characters")
)
