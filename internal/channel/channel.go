// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/encoding"
	"github.com/nearbytes/nearbytes/internal/store"
	"github.com/nearbytes/nearbytes/internal/wire"
	"github.com/nearbytes/nearbytes/models"
)

// channel is the default implementation of [Store].
type channel struct {
	backend store.Backend
	crypto  crypto.Service
}

// New constructs a [Store] backed by backend, hashing with crypto.
func New(backend store.Backend, cryptoSvc crypto.Service) Store {
	return &channel{backend: backend, crypto: cryptoSvc}
}

func (c *channel) hashHex(data []byte) string {
	sum := c.crypto.Hash(data)
	return encoding.EncodeHex64(sum).String()
}

// WriteEvent implements [Store].
func (c *channel) WriteEvent(ctx context.Context, volumeID string, signed models.SignedEvent) (string, error) {
	envelope, err := wire.SerializeEnvelope(signed)
	if err != nil {
		return "", fmt.Errorf("channel: serialize event: %w", err)
	}

	eventID := c.hashHex(envelope)
	path := store.EventPath(volumeID, eventID)

	existing, err := c.backend.ReadFile(ctx, path)
	if err == nil {
		if !bytes.Equal(existing, envelope) {
			return "", ErrStorageConflict
		}
		return eventID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("channel: check existing event: %w", err)
	}

	if err := c.backend.WriteFile(ctx, path, envelope); err != nil {
		return "", fmt.Errorf("channel: write event: %w", err)
	}
	return eventID, nil
}

// ListEventIDs implements [Store].
func (c *channel) ListEventIDs(ctx context.Context, volumeID string) ([]string, error) {
	names, err := c.backend.ListFiles(ctx, store.ChannelDir(volumeID))
	if err != nil {
		return nil, fmt.Errorf("channel: list events: %w", err)
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		stem, ok := strings.CutSuffix(name, ".json")
		if !ok {
			continue
		}
		if _, err := encoding.NewHex64(stem); err != nil {
			continue
		}
		ids = append(ids, stem)
	}
	return ids, nil
}

// ReadEvent implements [Store].
func (c *channel) ReadEvent(ctx context.Context, volumeID, eventID string) (models.SignedEvent, error) {
	raw, err := c.backend.ReadFile(ctx, store.EventPath(volumeID, eventID))
	if err != nil {
		return models.SignedEvent{}, fmt.Errorf("channel: read event %s: %w", eventID, err)
	}

	signed, err := wire.DeserializeEnvelope(raw)
	if err != nil {
		return models.SignedEvent{}, ErrCorruptEvent
	}
	return signed, nil
}

// WriteBlob implements [Store].
func (c *channel) WriteBlob(ctx context.Context, data []byte) (string, error) {
	hash := c.hashHex(data)
	path := store.BlockPath(hash)

	exists, err := c.backend.Exists(ctx, path)
	if err != nil {
		return "", fmt.Errorf("channel: check blob existence: %w", err)
	}
	if exists {
		return hash, nil
	}

	if err := c.backend.WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("channel: write blob: %w", err)
	}
	return hash, nil
}

// ReadBlob implements [Store].
func (c *channel) ReadBlob(ctx context.Context, hash string) ([]byte, error) {
	data, err := c.backend.ReadFile(ctx, store.BlockPath(hash))
	if err != nil {
		return nil, fmt.Errorf("channel: read blob %s: %w", hash, err)
	}

	if c.hashHex(data) != hash {
		return nil, ErrCorruptBlob
	}
	return data, nil
}
