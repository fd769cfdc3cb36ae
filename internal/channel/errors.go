package channel

import "errors"

var (
	// ErrStorageConflict is returned by WriteEvent when an event already
	// exists at the computed id's path with different bytes. Since the
	// path is the event's own content hash, two different byte sequences
	// colliding on the same id would mean a hash collision or a backend
	// bug; either way the write must not silently clobber the existing
	// event.
	ErrStorageConflict = errors.New("channel: event already exists with different content")

	// ErrCorruptEvent is returned by ReadEvent when the bytes at an event
	// path do not parse as a signed event.
	ErrCorruptEvent = errors.New("channel: event file is corrupt")

	// ErrCorruptBlob is returned by ReadBlob when the bytes read back do
	// not rehash to the requested address.
	ErrCorruptBlob = errors.New("channel: blob does not match its content address")

	// ErrInvalidEventID describes a directory entry whose stem is not a
	// 64-char lowercase hex string. ListEventIDs skips such entries and does
	// not return this error.
	ErrInvalidEventID = errors.New("channel: invalid event id")
)
