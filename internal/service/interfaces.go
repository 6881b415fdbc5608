package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RegistryService manages vault and device identity. The key fingerprint is
// the sole access gate: every registration is checked against the vault's
// stored fingerprint.
type RegistryService interface {
	// CreateVault registers a vault for the given fingerprint and returns
	// its id. A missing requestedID is filled with a generated one. Creation
	// is idempotent; re-creating with a different fingerprint fails.
	CreateVault(ctx context.Context, fingerprint, requestedID string) (string, error)

	// RegisterDevice registers (or re-registers) a device in a vault after
	// checking the fingerprint, and returns the device id.
	RegisterDevice(ctx context.Context, vaultID, fingerprint, requestedID string) (string, error)
}

// OpLogService exposes the append-only per-vault operation log.
type OpLogService interface {
	// PushOps validates and appends a batch, returning how many operations
	// were newly accepted and the vault cursor after the batch.
	PushOps(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (accepted int, cursor int64, err error)

	// PullOps returns envelopes after the given cursor plus the next cursor
	// position ("caught up" keeps the position unchanged). The limit is
	// clamped server-side.
	PullOps(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error)
}
