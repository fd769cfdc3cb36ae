// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/nearbytes/nearbytes/internal/crypto"
	"github.com/nearbytes/nearbytes/internal/encoding"
	"github.com/nearbytes/nearbytes/models"
)

const (
	FieldSecret         = "secret"
	FieldFileName       = "file_name"
	FieldContentAddress = "content_address"
	FieldAddFileRequest = "add_file_request"
)

// VolumeRequestValidator validates the inputs to the file service façade:
// a volume secret (passed as a bare string) and an AddFileRequest's secret
// and filename — before any of them reach key derivation or the storage
// backend. It does not check hash shapes: FieldContentAddress is not a
// field it handles.
type VolumeRequestValidator struct{}

// NewVolumeRequestValidator constructs a [Validator] for volume-level
// requests.
func NewVolumeRequestValidator() Validator {
	return &VolumeRequestValidator{}
}

func (v *VolumeRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddFileRequest:
		return v.validateAddFileRequest(ctx, value, fields...)
	case *models.AddFileRequest:
		return v.validateAddFileRequest(ctx, *value, fields...)

	case string:
		return v.validateSecret(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VolumeRequestValidator) validateSecret(_ context.Context, secret string) error {
	if len(secret) < 8 {
		return crypto.ErrInvalidSecret
	}
	return nil
}

func (v *VolumeRequestValidator) validateFileName(_ context.Context, fileName string) error {
	if fileName == "" {
		return encoding.ErrEmptyFileName
	}
	return nil
}

func (v *VolumeRequestValidator) validateAddFileRequest(ctx context.Context, request models.AddFileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecret, FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldSecret:
			if err := v.validateSecret(ctx, request.Secret); err != nil {
				return fmt.Errorf("add file request: %w", err)
			}
		case FieldFileName:
			if err := v.validateFileName(ctx, request.FileName); err != nil {
				return fmt.Errorf("add file request: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
