package encoding

import "errors"

var (
	// ErrInvalidHash is returned when a string does not match the required
	// 64-character lowercase hex shape (^[0-9a-f]{64}$).
	ErrInvalidHash = errors.New("invalid hash: expected 64 lowercase hex characters")

	// ErrEmptyFileName is returned when a filename is the empty string.
	ErrEmptyFileName = errors.New("file name must not be empty")
)
