package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type registryService struct {
	vaultRepository store.VaultRepository
	uuidGenerator   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewRegistryService(vaultRepository store.VaultRepository, logger *logger.Logger) RegistryService {
	return &registryService{
		vaultRepository: vaultRepository,
		uuidGenerator:   utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// CreateVault registers a vault keyed by its fingerprint. An empty requested
// id gets a generated one, so the caller always receives a usable vault id.
func (r *registryService) CreateVault(ctx context.Context, fingerprint, requestedID string) (string, error) {
	log := logger.FromContext(ctx)

	if fingerprint == "" {
		return "", ErrValidationNoFingerprint
	}

	vaultID := requestedID
	if vaultID == "" {
		vaultID = r.uuidGenerator.Generate()
	}

	vault, err := r.vaultRepository.CreateVault(ctx, models.Vault{ID: vaultID, KeyFingerprint: fingerprint})
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("func", "*registryService.CreateVault").
		Str("vault_id", vault.ID).
		Msg("vault registered")

	return vault.ID, nil
}

// RegisterDevice checks the fingerprint against the vault before touching
// device state; a mismatch rejects the registration outright.
func (r *registryService) RegisterDevice(ctx context.Context, vaultID, fingerprint, requestedID string) (string, error) {
	log := logger.FromContext(ctx)

	if vaultID == "" {
		return "", ErrValidationNoVaultID
	}
	if fingerprint == "" {
		return "", ErrValidationNoFingerprint
	}

	vault, err := r.vaultRepository.GetVault(ctx, vaultID)
	if err != nil {
		return "", err
	}
	if vault.KeyFingerprint != fingerprint {
		log.Warn().
			Str("func", "*registryService.RegisterDevice").
			Str("vault_id", vaultID).
			Msg("device registration rejected: fingerprint mismatch")
		return "", store.ErrFingerprintMismatch
	}

	deviceID := requestedID
	if deviceID == "" {
		deviceID = r.uuidGenerator.Generate()
	}

	device, err := r.vaultRepository.RegisterDevice(ctx, models.Device{ID: deviceID, VaultID: vaultID})
	if err != nil {
		return "", err
	}

	return device.ID, nil
}
