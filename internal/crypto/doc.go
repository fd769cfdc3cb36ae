// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic primitives and key derivation
// for the NearBytes volume engine.
//
// # Key hierarchy
//
// Every volume has exactly two derived secrets, both obtained from the same
// user secret in a single [DeriveKeys] call:
//
//  1. A P-256 ECDSA keypair. The public key, hex-encoded, *is* the volume
//     id — it names the volume's event directory and verifies every event
//     in it.
//  2. A 32-byte master symmetric key, used only to wrap the fresh per-file
//     key generated for each CREATE_FILE event.
//
// Unlike the zero-knowledge scheme this package's primitives were adapted
// from — where a KEK is derived from a password to protect a randomly
// generated, server-stored DEK — NearBytes has no enrollment step and no
// server-side escrow: [DeriveKeys] is a pure function of the secret, so any
// two holders of the same secret derive identical keys and can interoperate
// without ever exchanging anything but the secret itself.
//
// # Primitive set
//
// [Hash] (SHA-256), [EncryptSymmetric]/[DecryptSymmetric] (AES-256-GCM,
// fresh 12-byte IV, no AAD), [Sign]/[Verify] (ECDSA-P256 with SHA-256, raw
// r‖s), and [RandomBytes] (CSPRNG) are implementation-fixed: two clients
// sharing a secret must produce byte-identical ciphertexts' envelopes and
// agree on signatures, so none of these algorithms is a free choice.
package crypto
