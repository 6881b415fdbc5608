package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// ClientSyncEngine drives replication for one local vault: it owns the
// cursor pair, schedules periodic cycles with backoff, and surfaces
// conflicts to the caller. A single instance serves the whole process.
type ClientSyncEngine interface {
	// Connect derives the key fingerprint from the master key, registers
	// the vault and device on the server, persists the resulting sync
	// config and starts periodic syncing. Reconnecting to the same vault
	// keeps the device identity and both cursors.
	Connect(ctx context.Context, serverURL string, masterKey string, vaultID string) (models.SyncConfig, error)

	// Start enables periodic syncing. The first cycle fires shortly after
	// the call so startup is not blocked on the network.
	Start(ctx context.Context)

	// Stop disables periodic syncing and cancels any pending timer. A
	// cycle already in flight finishes on its own. Safe to call when the
	// engine is not running.
	Stop()

	// SyncNow runs one cycle immediately, even when periodic syncing is
	// disabled. Returns [ErrNotConnected] before the first Connect.
	SyncNow(ctx context.Context) (models.CycleResult, error)

	// Status reports the engine state with a fresh pending-operation count.
	Status(ctx context.Context) models.SyncStatus

	// Conflicts lists unresolved conflicts in a stable order.
	Conflicts() []models.Conflict

	// ResolveConflict resolves one conflict by recording a local edit that
	// carries the chosen text, then removes the conflict. The edit travels
	// through the normal push path on the next cycle.
	ResolveConflict(ctx context.Context, opID string, choice models.ConflictChoice, mergedText string) error
}
