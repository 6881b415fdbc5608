package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalVaultStorage is the client-local persistence layer: the outbound
// operation queue, the inbox of pulled envelopes, the recorded operation
// log, and the folded block state derived from it.
type LocalVaultStorage interface {
	// SyncConfig loads the persisted replication identity and cursor pair.
	// Returns [ErrSyncConfigNotFound] before the first successful connect.
	SyncConfig(ctx context.Context) (models.SyncConfig, error)

	// SaveSyncConfig persists the replication identity and cursors. Called
	// by the engine only after a durable server response.
	SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error

	// RecordLocalOp records a locally produced operation: stores it in the
	// operation log, enqueues it for push, and refolds the touched entity.
	// Returns the queued envelope whose Cursor is the local queue position.
	RecordLocalOp(ctx context.Context, op models.BlockOp) (models.OpEnvelope, error)

	// ListOpsSince returns up to limit queued envelopes with local queue
	// cursor strictly greater than cursor, in queue order.
	ListOpsSince(ctx context.Context, cursor int64, limit int) ([]models.OpEnvelope, error)

	// PendingOpCount counts queued operations not yet pushed past the given
	// queue cursor.
	PendingOpCount(ctx context.Context, pushedThrough int64) (int, error)

	// StoreInboxOps stores pulled envelopes for later application,
	// idempotent by operation id.
	StoreInboxOps(ctx context.Context, ops []models.OpEnvelope) error

	// ApplyInbox decodes stored unapplied envelopes, records their
	// operations, refolds the touched entities, and reports conflicts where
	// a remote edit crosses a pending (un-pushed) local text change.
	ApplyInbox(ctx context.Context) (models.ApplyResult, error)

	// NextClock returns a logical clock value strictly greater than every
	// clock recorded so far, local or remote.
	NextClock(ctx context.Context) (int64, error)

	// Blocks lists the live folded blocks of one container in sort order.
	Blocks(ctx context.Context, containerID string) ([]models.BlockState, error)

	// Block returns the folded state of one entity; ok is false when the
	// entity has never been added.
	Block(ctx context.Context, entityID string) (models.BlockState, bool, error)
}
