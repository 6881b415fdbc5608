package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) pushOps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	accepted, cursor, err := h.services.OpLogService.PushOps(ctx, request.VaultID, request.DeviceID, request.Ops)
	if err != nil {
		writeError(w, log, err, "unexpected error occurred during operation push")
		return
	}

	log.Debug().
		Str("vault_id", request.VaultID).
		Int("received", len(request.Ops)).
		Int("accepted", accepted).
		Int64("cursor", cursor).
		Msg("operations pushed")

	utils.WriteJSON(w, models.PushResponse{Accepted: accepted, Cursor: cursor}, http.StatusOK)
}

func (h *Handler) pullOps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	vaultID := query.Get("vaultId")

	var since int64
	if rawSince := query.Get("since"); rawSince != "" {
		parsed, err := strconv.ParseInt(rawSince, 10, 64)
		if err != nil {
			log.Err(err).Str("since", rawSince).Msg("invalid `since` query parameter")
			http.Error(w, "invalid `since` query parameter", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	var limit int
	if rawLimit := query.Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			log.Err(err).Str("limit", rawLimit).Msg("invalid `limit` query parameter")
			http.Error(w, "invalid `limit` query parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	envelopes, nextCursor, err := h.services.OpLogService.PullOps(ctx, vaultID, since, limit)
	if err != nil {
		writeError(w, log, err, "unexpected error occurred during operation pull")
		return
	}

	// An empty page marshals as [] rather than null.
	if envelopes == nil {
		envelopes = []models.OpEnvelope{}
	}

	log.Debug().
		Str("vault_id", vaultID).
		Int64("since", since).
		Int("returned", len(envelopes)).
		Int64("next_cursor", nextCursor).
		Msg("operations pulled")

	utils.WriteJSON(w, models.PullResponse{Ops: envelopes, NextCursor: nextCursor}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
}
