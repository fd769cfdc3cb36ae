// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package volume implements the spec-level "Volume Engine": deriving a
// volume's identity and keys from a secret, and materializing its append-
// only event log into a file map.
package volume

import (
	"context"
	"fmt"
	"sort"

	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/event"
	"github.com/nearbytes/nearbytes/internal/logger"
	"github.com/nearbytes/nearbytes/models"
)

// Identity is the derived keys and id for one volume, computed from a
// secret. It is never persisted; a caller re-derives it on every call.
type Identity struct {
	VolumeID string
	Keypair  crypto.Keypair
	Master   crypto.MasterKey
}

// Engine materializes a volume's event log into a file map. It holds no
// per-volume state; every method takes the identity and channel it needs.
type Engine struct {
	crypto crypto.Service
	event  *event.Engine
	log    *logger.Logger
}

// NewEngine constructs an [Engine].
func NewEngine(cryptoSvc crypto.Service, eventEngine *event.Engine, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{crypto: cryptoSvc, event: eventEngine, log: log}
}

// Open derives a volume's signing keypair, master key, and id from secret.
func (e *Engine) Open(secret string) (Identity, error) {
	kp, master, err := e.crypto.DeriveKeys(secret)
	if err != nil {
		return Identity{}, fmt.Errorf("volume: derive keys: %w", err)
	}
	return Identity{VolumeID: kp.PublicKeyHex(), Keypair: kp, Master: master}, nil
}

// Materialize implements spec's fold: it enumerates every event id under
// id.VolumeID, reads and verifies each one (dropping and logging the ones
// that fail verification rather than aborting), and folds the surviving set
// into a filename-keyed file map using tombstone-wins-then-lexicographically-
// -smallest-event-id-tie-break semantics.
//
// The returned slice is sorted by filename (Unicode code-point order).
func (e *Engine) Materialize(ctx context.Context, ch channel.Store, id Identity) ([]models.FileMetadata, error) {
	ids, err := ch.ListEventIDs(ctx, id.VolumeID)
	if err != nil {
		return nil, fmt.Errorf("volume: list events: %w", err)
	}

	type byName struct {
		deleted bool
		winner  models.FileMetadata
		hasWin  bool
	}
	folded := make(map[string]*byName)

	for _, eventID := range ids {
		signed, err := ch.ReadEvent(ctx, id.VolumeID, eventID)
		if err != nil {
			e.log.Warn().Str("eventId", eventID).Err(err).Msg("volume: dropping unreadable event")
			continue
		}

		if !e.event.Verify(signed, id.Keypair.Public) {
			e.log.Warn().Str("eventId", eventID).Err(event.ErrBadEvent).Msg("volume: dropping event that failed verification")
			continue
		}

		name := signed.Payload.FileName
		entry, ok := folded[name]
		if !ok {
			entry = &byName{}
			folded[name] = entry
		}

		switch signed.Payload.Type {
		case models.DeleteFile:
			entry.deleted = true
		case models.CreateFile:
			if !entry.hasWin || eventID < entry.winner.EventID {
				entry.winner = models.FileMetadata{
					FileName:       name,
					ContentAddress: signed.Payload.Hash,
					EventID:        eventID,
				}
				entry.hasWin = true
			}
		}
	}

	files := make([]models.FileMetadata, 0, len(folded))
	for _, entry := range folded {
		if entry.deleted || !entry.hasWin {
			continue
		}
		files = append(files, entry.winner)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].FileName < files[j].FileName })
	return files, nil
}

// FindByContentAddress performs a linear scan over an already-materialized
// file map for the first entry whose ContentAddress equals hash. It exists
// so a future collaborator with a hash but no filename (e.g. a debug or
// dedup tool) can resolve it the same way the system would via listFiles,
// without building or maintaining a second index.
func FindByContentAddress(files []models.FileMetadata, hash string) (models.FileMetadata, bool) {
	for _, f := range files {
		if f.ContentAddress == hash {
			return f, true
		}
	}
	return models.FileMetadata{}, false
}
