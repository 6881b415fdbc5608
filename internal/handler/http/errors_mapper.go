package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoFingerprint: http.StatusBadRequest,
	service.ErrValidationNoVaultID:     http.StatusBadRequest,
	service.ErrValidationNoDeviceID:    http.StatusBadRequest,
	service.ErrValidationNoOpsProvided: http.StatusBadRequest,
	service.ErrValidationEmptyOpID:     http.StatusBadRequest,

	store.ErrVaultNotFound:  http.StatusNotFound,
	store.ErrDeviceNotFound: http.StatusNotFound,
	// On the device endpoint a fingerprint mismatch is an authorization
	// failure and is overridden to 403 there.
	store.ErrFingerprintMismatch: http.StatusConflict,
	store.ErrDeviceVaultMismatch: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
