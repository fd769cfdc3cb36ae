// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared across the volume
// engine's packages: event payloads, signed events, and the materialized
// file map. Types here carry no behavior beyond simple accessors; validation
// and cryptographic operations live in the owning packages (internal/event,
// internal/volume).
package models

// EventType distinguishes the two kinds of statement a signed event can make
// about a filename.
type EventType string

const (
	// CreateFile records that a file body was encrypted and stored at a
	// content address, wrapped under a freshly generated per-file key.
	CreateFile EventType = "CREATE_FILE"

	// DeleteFile records that a filename should be treated as absent from
	// every materialization that includes this event, regardless of any
	// CREATE_FILE events for the same name.
	DeleteFile EventType = "DELETE_FILE"
)

// ZeroHash is the sentinel all-zeros hash used in the Hash field of
// DELETE_FILE payloads, where no blob exists to address.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// EventPayload is the signed portion of an event: the statement the writer
// is making about a single filename.
//
// Field order matters: internal/wire.SerializePayload serializes it with
// these fields in declaration order to produce the canonical signing input
// described by the on-disk wire format.
type EventPayload struct {
	// Type is CreateFile or DeleteFile.
	Type EventType `json:"type"`

	// FileName is the UTF-8 logical name of the file the event describes.
	FileName string `json:"fileName"`

	// Hash is the 64-char lowercase hex content address of the blob this
	// event references. For DeleteFile it is the ZeroHash sentinel.
	Hash string `json:"hash"`

	// EncryptedKey is the per-file key wrapped under the volume's master
	// key, base64-encoded. Empty for DeleteFile.
	EncryptedKey []byte `json:"encryptedKey"`
}

// SignedEvent pairs a payload with the ECDSA-P256 signature over its
// canonical serialization.
type SignedEvent struct {
	Payload   EventPayload `json:"payload"`
	Signature []byte       `json:"signature"`
}

// FileMetadata is one entry of the materialized file map: the public,
// derived view of a single surviving CREATE_FILE event.
type FileMetadata struct {
	// FileName is the logical name under which the file is addressable.
	FileName string

	// ContentAddress is the hash of the encrypted blob (payload.Hash of the
	// winning CREATE_FILE event).
	ContentAddress string

	// EventID is the id of the CREATE_FILE event that produced this entry —
	// the tie-break key used when multiple creates exist for the same name.
	EventID string

	// MimeType is an optional caller-supplied hint; it is never
	// cryptographically bound to the blob and is not part of spec.md's data
	// model, but is threaded through by internal/nearbytes for callers that
	// want to label a file's content type without a second store.
	MimeType string
}
