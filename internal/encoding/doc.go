// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoding defines the canonical byte-to-text forms used across the
// volume engine: lowercase hex for hashes and public keys, standard
// (padded, non-URL) base64 for byte fields embedded in JSON, and validating
// newtypes so a malformed hash cannot silently propagate past the boundary
// where it is first parsed.
//
// This mirrors the validating-newtype-string pattern the wider codebase
// uses for opaque client-encrypted fields (e.g. a ciphered string type that
// is never interpreted, only carried) — here applied to strings whose shape
// *is* meaningful and must be checked once, at construction.
package encoding
