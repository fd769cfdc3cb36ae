// Package channel wraps a [store.Backend] and the on-disk path layout into
// the operations a volume's event log and blob store are built from:
// writing and reading signed events, and writing and reading content
// addressed blobs.
package channel

import (
	"context"

	"github.com/nearbytes/nearbytes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_store_mock.go -package=mock

// Store is the channel-layer capability surface a volume id operates
// against. volumeID is always the volume's hex-encoded public key.
type Store interface {
	// WriteEvent serializes signed, computes its event id as the hex
	// SHA-256 of the serialized envelope, and writes it under volumeID.
	// Returns [ErrStorageConflict] if an event already exists at that id
	// with different bytes; writing byte-identical content twice is a
	// no-op that returns the same id.
	WriteEvent(ctx context.Context, volumeID string, signed models.SignedEvent) (eventID string, err error)

	// ListEventIDs returns every valid event id stored under volumeID.
	// Directory entries whose stem is not a 64-char lowercase hex string
	// are skipped rather than causing the whole listing to fail.
	ListEventIDs(ctx context.Context, volumeID string) ([]string, error)

	// ReadEvent reads and parses the event eventID under volumeID. Returns
	// [ErrCorruptEvent] if the bytes do not parse as a signed event.
	ReadEvent(ctx context.Context, volumeID, eventID string) (models.SignedEvent, error)

	// WriteBlob computes the SHA-256 hash of data and writes it to the
	// content-addressed blob store. Writing identical bytes twice is a
	// no-op; the hash is returned either way.
	WriteBlob(ctx context.Context, data []byte) (hash string, err error)

	// ReadBlob reads the blob stored at hash and verifies that it rehashes
	// to hash. Returns [ErrCorruptBlob] on mismatch.
	ReadBlob(ctx context.Context, hash string) ([]byte, error)
}
