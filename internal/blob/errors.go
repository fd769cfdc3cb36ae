package blob

import "errors"

var (
	// ErrCorruptBlob is returned by Decrypt when the bytes read back from
	// the channel do not rehash to the content address the event claims.
	ErrCorruptBlob = errors.New("blob: content does not match its address")

	// ErrBlobMissing is returned by Decrypt when the event's referenced
	// blob is not present in the backend.
	ErrBlobMissing = errors.New("blob: referenced blob not found")
)
