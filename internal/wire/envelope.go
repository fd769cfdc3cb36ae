// Package wire implements the canonical on-disk serialization of signed
// events (spec-level "Event Serialization"): a fixed JSON field order with
// byte fields base64-encoded, so that two implementations presented with
// the same payload produce byte-identical signing input and the same event
// id.
//
// Go's encoding/json already marshals struct fields in declaration order
// and renders []byte fields as standard padded base64 — exactly the
// canonical form this format requires — so no custom encoder is needed; the
// struct field order in models.EventPayload and models.SignedEvent IS the
// canonical form.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/nearbytes/nearbytes/models"
)

// SerializePayload returns the canonical UTF-8 JSON encoding of payload.
// This is the exact byte sequence that gets signed and verified — never the
// whole envelope.
func SerializePayload(payload models.EventPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("wire: serialize payload: %w", err)
	}
	return data, nil
}

// SerializeEnvelope returns the canonical UTF-8 JSON encoding of a full
// signed event (payload + signature). Hashing this output yields the
// event's id.
func SerializeEnvelope(signed models.SignedEvent) ([]byte, error) {
	data, err := json.Marshal(signed)
	if err != nil {
		return nil, fmt.Errorf("wire: serialize envelope: %w", err)
	}
	return data, nil
}

// DeserializeEnvelope parses raw as a signed event. Returns an error if raw
// is not well-formed JSON matching [models.SignedEvent]'s shape.
func DeserializeEnvelope(raw []byte) (models.SignedEvent, error) {
	var signed models.SignedEvent
	if err := json.Unmarshal(raw, &signed); err != nil {
		return models.SignedEvent{}, fmt.Errorf("wire: parse envelope: %w", err)
	}
	return signed, nil
}
