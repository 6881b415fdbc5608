// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the note-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrFingerprintMismatch] for 403/409,
// [ErrVaultNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, base-URL
// handling, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetBaseURL points the adapter at a (possibly new) server. The URL is
	// normalized: scheme defaults to http, trailing slashes are trimmed.
	SetBaseURL(serverURL string)

	// CreateVault registers (or idempotently re-registers) a vault.
	CreateVault(ctx context.Context, req models.CreateVaultRequest) (models.CreateVaultResponse, error)

	// RegisterDevice registers a device inside an existing vault.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.RegisterDeviceResponse, error)

	// PushOps uploads a batch of queued operations.
	PushOps(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// PullOps downloads envelopes after the given cursor position.
	PullOps(ctx context.Context, vaultID string, since int64, limit int) (models.PullResponse, error)

	// Health probes the server liveness endpoint.
	Health(ctx context.Context) error
}
