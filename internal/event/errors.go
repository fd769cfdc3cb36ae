package event

import "errors"

// ErrBadEvent identifies an event that fails verification: malformed
// fields, a hash shape violation, or signature verification failure.
// [Engine.Verify] reports such an event as false rather than returning this
// error; the volume engine logs it with ErrBadEvent and drops the event from
// materialization rather than aborting the whole fold.
var ErrBadEvent = errors.New("event: failed verification")
