package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists vault and device identity records.
type VaultRepository interface {
	// CreateVault inserts a vault or returns the existing record when the id
	// is already taken and the fingerprint matches. A fingerprint mismatch
	// yields [ErrFingerprintMismatch].
	CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error)

	// GetVault fetches a vault by id, [ErrVaultNotFound] when absent.
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)

	// RegisterDevice inserts a device or refreshes its last-seen stamp when
	// the id is already registered in the same vault. Registering an existing
	// id against a different vault yields [ErrDeviceVaultMismatch].
	RegisterDevice(ctx context.Context, device models.Device) (models.Device, error)
}

// OpLogRepository persists the per-vault append-only operation log.
type OpLogRepository interface {
	// PushOps appends a batch of operations inside a single transaction,
	// assigning each new operation the next vault cursor. Operations whose
	// id is already stored are skipped without consuming a cursor. Returns
	// the number of newly inserted operations and the vault's cursor after
	// the batch.
	PushOps(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (accepted int, cursor int64, err error)

	// PullOps returns up to limit envelopes with cursor greater than since,
	// in ascending cursor order.
	PullOps(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
