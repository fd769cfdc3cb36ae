// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package nearbytes is the thin public façade over the volume engine: the
// handful of operations (open, listFiles, addFile, deleteFile, getFile,
// getEventLog) a caller uses without ever touching the channel, event, or
// blob layers directly.
package nearbytes

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nearbytes/nearbytes/internal/blob"
	"github.com/nearbytes/nearbytes/internal/channel"
	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/encoding"
	"github.com/nearbytes/nearbytes/internal/event"
	"github.com/nearbytes/nearbytes/internal/logger"
	"github.com/nearbytes/nearbytes/internal/store"
	"github.com/nearbytes/nearbytes/internal/validators"
	"github.com/nearbytes/nearbytes/internal/volume"
	"github.com/nearbytes/nearbytes/models"
)

// ErrFileTooLarge is returned by AddFile when the supplied bytes exceed the
// service's configured upload limit.
var ErrFileTooLarge = errors.New("nearbytes: file exceeds maximum upload size")

// Service is the file service façade. It holds no per-volume state: every
// public method re-derives keys and re-materializes the event log from
// scratch, per spec.md §4.11.
type Service struct {
	channel       channel.Store
	blobEngine    *blob.Engine
	eventEngine   *event.Engine
	volumeEngine  *volume.Engine
	validator     validators.Validator
	log           *logger.Logger
	maxUploadSize int64 // 0 means unlimited
}

// NewService constructs a [Service] backed by backend. maxUploadSize bounds
// AddFile's plaintext length; pass 0 for no limit.
func NewService(backend store.Backend, maxUploadSize int64, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	cryptoSvc := crypto.NewService()
	blobEngine := blob.NewEngine(cryptoSvc)
	eventEngine := event.NewEngine(cryptoSvc, blobEngine)

	return &Service{
		channel:       channel.New(backend, cryptoSvc),
		blobEngine:    blobEngine,
		eventEngine:   eventEngine,
		volumeEngine:  volume.NewEngine(cryptoSvc, eventEngine, log),
		validator:     validators.NewVolumeRequestValidator(),
		log:           log,
		maxUploadSize: maxUploadSize,
	}
}

// Open derives a volume's id and lists its current files in one call.
func (s *Service) Open(ctx context.Context, secret string) (string, []models.FileMetadata, error) {
	id, files, err := s.openAndMaterialize(ctx, secret)
	if err != nil {
		return "", nil, err
	}
	return id.VolumeID, files, nil
}

// ListFiles returns the volume's current files, sorted by filename.
func (s *Service) ListFiles(ctx context.Context, secret string) ([]models.FileMetadata, error) {
	_, files, err := s.Open(ctx, secret)
	return files, err
}

// AddFile encrypts bytes under a fresh per-file key, stores the resulting
// blob and a signed CREATE_FILE event, and returns the new file's metadata.
// mimeType is carried on the returned value only; it is never persisted or
// cryptographically bound, since materialization never reconstructs it.
func (s *Service) AddFile(ctx context.Context, secret, fileName string, data []byte, mimeType string) (models.FileMetadata, error) {
	request := models.AddFileRequest{Secret: secret, FileName: fileName, Bytes: data, MimeType: mimeType}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.FileMetadata{}, err
	}

	if s.maxUploadSize > 0 && int64(len(data)) > s.maxUploadSize {
		return models.FileMetadata{}, ErrFileTooLarge
	}

	id, err := s.volumeEngine.Open(secret)
	if err != nil {
		return models.FileMetadata{}, err
	}

	eventID, contentAddress, err := s.eventEngine.BuildCreate(ctx, s.channel, id.Master, id.Keypair.Private, id.VolumeID, fileName, data)
	if err != nil {
		return models.FileMetadata{}, err
	}

	return models.FileMetadata{
		FileName:       fileName,
		ContentAddress: contentAddress,
		EventID:        eventID,
		MimeType:       mimeType,
	}, nil
}

// DeleteFile appends a tombstone event for fileName. It is idempotent: a
// delete for an already-absent filename is legal and succeeds.
func (s *Service) DeleteFile(ctx context.Context, secret, fileName string) error {
	if err := s.validator.Validate(ctx, secret); err != nil {
		return err
	}
	if fileName == "" {
		return encoding.ErrEmptyFileName
	}

	id, err := s.volumeEngine.Open(secret)
	if err != nil {
		return err
	}

	_, err = s.eventEngine.BuildDelete(ctx, s.channel, id.Keypair.Private, id.VolumeID, fileName)
	return err
}

// GetFile returns the decrypted plaintext of fileName, or ErrFileAbsent if
// the volume's materialized state does not currently contain it.
func (s *Service) GetFile(ctx context.Context, secret, fileName string) ([]byte, error) {
	id, files, err := s.openAndMaterialize(ctx, secret)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.FileName != fileName {
			continue
		}
		signed, err := s.channel.ReadEvent(ctx, id.VolumeID, f.EventID)
		if err != nil {
			return nil, fmt.Errorf("nearbytes: read event for %s: %w", fileName, err)
		}
		return s.blobEngine.Decrypt(ctx, s.channel, id.Master, signed.Payload)
	}

	return nil, ErrFileAbsent
}

// GetEventLog returns every signed event currently readable for the volume,
// sorted by filename, for debugging and auditing.
func (s *Service) GetEventLog(ctx context.Context, secret string) ([]models.SignedEvent, error) {
	if err := s.validator.Validate(ctx, secret); err != nil {
		return nil, err
	}

	id, err := s.volumeEngine.Open(secret)
	if err != nil {
		return nil, err
	}

	ids, err := s.channel.ListEventIDs(ctx, id.VolumeID)
	if err != nil {
		return nil, err
	}

	events := make([]models.SignedEvent, 0, len(ids))
	for _, eventID := range ids {
		signed, err := s.channel.ReadEvent(ctx, id.VolumeID, eventID)
		if err != nil {
			s.log.Warn().Str("eventId", eventID).Err(err).Msg("nearbytes: skipping unreadable event in log")
			continue
		}
		events = append(events, signed)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Payload.FileName < events[j].Payload.FileName
	})
	return events, nil
}

// FindByContentAddress resolves hash against secret's currently materialized
// files, returning ErrFileAbsent if no file currently has that content
// address.
func (s *Service) FindByContentAddress(ctx context.Context, secret, hash string) (models.FileMetadata, error) {
	_, files, err := s.openAndMaterialize(ctx, secret)
	if err != nil {
		return models.FileMetadata{}, err
	}

	found, ok := volume.FindByContentAddress(files, hash)
	if !ok {
		return models.FileMetadata{}, ErrFileAbsent
	}
	return found, nil
}

func (s *Service) openAndMaterialize(ctx context.Context, secret string) (volume.Identity, []models.FileMetadata, error) {
	if err := s.validator.Validate(ctx, secret); err != nil {
		return volume.Identity{}, nil, err
	}

	id, err := s.volumeEngine.Open(secret)
	if err != nil {
		return volume.Identity{}, nil, err
	}

	files, err := s.volumeEngine.Materialize(ctx, s.channel, id)
	if err != nil {
		return volume.Identity{}, nil, err
	}
	return id, files, nil
}
