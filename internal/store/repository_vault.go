package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/jackc/pgerrcode"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It manages the "vaults" and "devices" identity tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateVault persists a new vault record and returns the fully populated
// [models.Vault] with server-assigned fields (LastCursor, CreatedAt).
//
// Creation is idempotent on the vault id: a unique_violation on an existing
// id re-reads the stored record and compares fingerprints, so repeating the
// same request yields the same vault.
//
// Error handling:
//   - id taken, same fingerprint → existing record, nil error.
//   - id taken, different fingerprint → [ErrFingerprintMismatch].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vaultRepository) CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createVault, vault.ID, vault.KeyFingerprint)

	var created models.Vault
	if err := row.Scan(&created.ID, &created.KeyFingerprint, &created.LastCursor, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			existing, getErr := r.GetVault(ctx, vault.ID)
			if getErr != nil {
				return models.Vault{}, getErr
			}
			if existing.KeyFingerprint != vault.KeyFingerprint {
				log.Warn().
					Str("func", "*vaultRepository.CreateVault").
					Str("vault_id", vault.ID).
					Msg("vault id taken with a different key fingerprint")
				return models.Vault{}, ErrFingerprintMismatch
			}
			return existing, nil
		}

		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("error: scanning error")
		return models.Vault{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetVault retrieves a vault record by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrVaultNotFound].
//   - Any other driver-level error → wrapped with [ErrScanningRow].
func (r *vaultRepository) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	var vault models.Vault
	row := r.DB.QueryRowContext(ctx, getVault, vaultID)

	if err := row.Scan(&vault.ID, &vault.KeyFingerprint, &vault.LastCursor, &vault.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrVaultNotFound
		}

		log.Err(err).Str("func", "*vaultRepository.GetVault").Str("vault_id", vaultID).Msg("error: scanning error")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vault, nil
}

// RegisterDevice inserts a device row or, when the id is already registered
// in the same vault, refreshes its last-seen stamp. Either way the returned
// [models.Device] carries the stored CreatedAt and the fresh LastSeen.
//
// Error handling:
//   - no row returned → the id belongs to another vault → [ErrDeviceVaultMismatch].
//   - foreign_key_violation on vault_id → [ErrVaultNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vaultRepository) RegisterDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, registerDevice, device.ID, device.VaultID)

	var registered models.Device
	if err := row.Scan(&registered.ID, &registered.VaultID, &registered.CreatedAt, &registered.LastSeen); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Warn().
				Str("func", "*vaultRepository.RegisterDevice").
				Str("device_id", device.ID).
				Str("vault_id", device.VaultID).
				Msg("device id is already registered in another vault")
			return models.Device{}, ErrDeviceVaultMismatch
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Device{}, ErrVaultNotFound
		default:
			log.Err(err).Str("func", "*vaultRepository.RegisterDevice").Msg("error: scanning error")
			return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return registered, nil
}
