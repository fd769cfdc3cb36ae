// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// kdfSalt and kdfIterations are fixed by spec.md §4.1/§6 and MUST NOT be
// made configurable: every implementation that derives keys from the same
// secret has to land on the same keypair, and a configurable salt or
// iteration count would break that cross-implementation guarantee.
const (
	kdfSalt       = "nearbytes-salt-v1"
	kdfIterations = 100_000
	kdfKeyLen     = 64 // 32 bytes private-scalar seed + 32 bytes master key
)

// DeriveKeys implements [Service]. It runs a single PBKDF2-HMAC-SHA256 pass
// over secret and splits the 64-byte output: the first 32 bytes seed the
// P-256 private scalar (reduced mod the curve order if the raw value
// exceeds it — negligibly likely but checked for correctness), the second
// 32 bytes become the master key unchanged.
func (s *service) DeriveKeys(secret string) (Keypair, MasterKey, error) {
	if len(secret) < 8 {
		return Keypair{}, MasterKey{}, ErrInvalidSecret
	}

	material := pbkdf2.Key([]byte(secret), []byte(kdfSalt), kdfIterations, kdfKeyLen, sha256.New)

	scalarSeed := material[:32]
	var master MasterKey
	copy(master[:], material[32:])

	d := new(big.Int).SetBytes(scalarSeed)
	n := curve.Params().N
	d.Mod(d, n)
	if d.Sign() == 0 {
		// Zero scalar is invalid for ECDSA; fall back to 1. Probability of
		// hitting this branch with a real secret is astronomically small.
		d.SetInt64(1)
	}

	x, y := curve.ScalarBaseMult(d.Bytes())
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}

	return Keypair{Private: priv, Public: &priv.PublicKey}, master, nil
}

// uncompressedPointLen is the byte length of a 0x04 ‖ X ‖ Y P-256 point.
const uncompressedPointLen = 1 + 2*32

// PublicKeyHex renders k's public key as the lowercase hex string used as
// the volume id: the uncompressed point encoding (0x04 ‖ X ‖ Y, 65 bytes),
// hex-encoded. Encoded by hand (rather than the deprecated package-level
// elliptic.Marshal) since the field width is fixed once the curve is fixed.
func (k Keypair) PublicKeyHex() string {
	buf := make([]byte, uncompressedPointLen)
	buf[0] = 4
	k.Public.X.FillBytes(buf[1:33])
	k.Public.Y.FillBytes(buf[33:65])
	return hex.EncodeToString(buf)
}

// ParsePublicKeyHex inverts [Keypair.PublicKeyHex]: it decodes a volume id
// back into a P-256 public key for signature verification. Returns nil if
// the hex is malformed or does not decode to a point on the curve.
func ParsePublicKeyHex(volumeID string) *ecdsa.PublicKey {
	raw, err := hex.DecodeString(volumeID)
	if err != nil || len(raw) != uncompressedPointLen || raw[0] != 4 {
		return nil
	}

	x := new(big.Int).SetBytes(raw[1:33])
	y := new(big.Int).SetBytes(raw[33:65])
	if !curve.IsOnCurve(x, y) {
		return nil
	}

	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
}
