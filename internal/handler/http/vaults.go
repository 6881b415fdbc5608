package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vaultID, err := h.services.RegistryService.CreateVault(ctx, request.KeyFingerprint, request.VaultID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFingerprintMismatch):
			log.Err(err).Str("vault_id", request.VaultID).Msg("vault exists with a different key fingerprint")
			http.Error(w, "vault exists with a different key fingerprint", http.StatusConflict)
			return
		default:
			writeError(w, log, err, "unexpected error occurred during vault creation")
			return
		}
	}

	log.Debug().Str("vault_id", vaultID).Msg("vault registered")

	utils.WriteJSON(w, models.CreateVaultResponse{VaultID: vaultID}, http.StatusOK)
}

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deviceID, err := h.services.RegistryService.RegisterDevice(ctx, request.VaultID, request.KeyFingerprint, request.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFingerprintMismatch):
			// On this endpoint a mismatch means the caller does not hold the
			// vault's key: an authorization failure, not a conflict.
			log.Err(err).Str("vault_id", request.VaultID).Msg("key fingerprint does not match vault")
			http.Error(w, "key fingerprint does not match vault", http.StatusForbidden)
			return
		case errors.Is(err, store.ErrDeviceVaultMismatch):
			log.Err(err).Str("device_id", request.DeviceID).Msg("device id already registered to a different vault")
			http.Error(w, "device id already registered to a different vault", http.StatusConflict)
			return
		default:
			writeError(w, log, err, "unexpected error occurred during device registration")
			return
		}
	}

	log.Debug().Str("vault_id", request.VaultID).Str("device_id", deviceID).Msg("device registered")

	utils.WriteJSON(w, models.RegisterDeviceResponse{DeviceID: deviceID}, http.StatusOK)
}

// writeError maps err to a status code; validation failures carry their own
// message, everything else responds with the generic status text so storage
// error details never leak to the client.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)

	log.Err(err).Int("status", status).Msg(msg)

	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		http.Error(w, err.Error(), status)
	default:
		http.Error(w, http.StatusText(status), status)
	}
}
