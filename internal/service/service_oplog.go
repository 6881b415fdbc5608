// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// defaultPullLimit is used when the client sends no limit (or a
	// non-positive one).
	defaultPullLimit = 500

	// maxPullLimit caps a single pull page regardless of what the client
	// asks for.
	maxPullLimit = 500
)

type opLogService struct {
	opLogRepository store.OpLogRepository
	vaultRepository store.VaultRepository

	logger *logger.Logger
}

func NewOpLogService(opLogRepository store.OpLogRepository, vaultRepository store.VaultRepository, logger *logger.Logger) OpLogService {
	return &opLogService{
		opLogRepository: opLogRepository,
		vaultRepository: vaultRepository,
		logger:          logger,
	}
}

func (o *opLogService) PushOps(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
	log := logger.FromContext(ctx)

	if vaultID == "" {
		return 0, 0, ErrValidationNoVaultID
	}
	if deviceID == "" {
		return 0, 0, ErrValidationNoDeviceID
	}
	if len(ops) == 0 {
		return 0, 0, ErrValidationNoOpsProvided
	}
	for _, op := range ops {
		if op.OpID == "" {
			return 0, 0, ErrValidationEmptyOpID
		}
	}

	accepted, cursor, err := o.opLogRepository.PushOps(ctx, vaultID, deviceID, ops)
	if err != nil {
		return 0, 0, err
	}

	log.Debug().
		Str("func", "*opLogService.PushOps").
		Str("vault_id", vaultID).
		Int("batch", len(ops)).
		Int("accepted", accepted).
		Int64("cursor", cursor).
		Msg("push batch stored")

	return accepted, cursor, nil
}

func (o *opLogService) PullOps(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error) {
	if vaultID == "" {
		return nil, 0, ErrValidationNoVaultID
	}

	// pulling from an unknown vault is a 404, not an empty page
	if _, err := o.vaultRepository.GetVault(ctx, vaultID); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultPullLimit
	}
	if limit > maxPullLimit {
		limit = maxPullLimit
	}

	envelopes, err := o.opLogRepository.PullOps(ctx, vaultID, since, limit)
	if err != nil {
		return nil, 0, err
	}

	nextCursor := since
	if len(envelopes) > 0 {
		nextCursor = envelopes[len(envelopes)-1].Cursor
	}

	return envelopes, nextCursor, nil
}
