package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// localVaultStorage is the SQLite-backed implementation of
// [LocalVaultStorage]. Four tables cooperate: outbox (queued envelopes with
// a local AUTOINCREMENT queue cursor), inbox (pulled envelopes awaiting
// application), block_ops (every recorded operation, local and remote), and
// blocks (the folded state derived from block_ops).
type localVaultStorage struct {
	*DB
	logger *logger.Logger
}

// NewLocalVaultStorage constructs a [LocalVaultStorage] backed by the
// provided SQLite connection and logger.
func NewLocalVaultStorage(db *DB, logger *logger.Logger) LocalVaultStorage {
	return &localVaultStorage{
		DB:     db,
		logger: logger,
	}
}

func (l *localVaultStorage) SyncConfig(ctx context.Context) (models.SyncConfig, error) {
	var cfg models.SyncConfig
	row := l.DB.QueryRowContext(ctx, getSyncConfig)

	err := row.Scan(&cfg.ServerURL, &cfg.VaultID, &cfg.DeviceID, &cfg.KeyFingerprint, &cfg.LastPushCursor, &cfg.LastPullCursor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncConfig{}, ErrSyncConfigNotFound
		}
		return models.SyncConfig{}, fmt.Errorf("failed to load sync config: %w", err)
	}

	return cfg, nil
}

func (l *localVaultStorage) SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	_, err := l.DB.ExecContext(ctx, saveSyncConfig,
		cfg.ServerURL, cfg.VaultID, cfg.DeviceID, cfg.KeyFingerprint, cfg.LastPushCursor, cfg.LastPullCursor)
	if err != nil {
		return fmt.Errorf("failed to save sync config: %w", err)
	}

	return nil
}

// RecordLocalOp stores the operation, enqueues its envelope for push, and
// refolds the touched entity, all in one transaction.
func (l *localVaultStorage) RecordLocalOp(ctx context.Context, op models.BlockOp) (models.OpEnvelope, error) {
	log := logger.FromContext(ctx)

	payload, err := models.EncodeBlockOp(op)
	if err != nil {
		return models.OpEnvelope{}, err
	}
	meta := op.Meta()

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.OpEnvelope{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, insertBlockOp,
		meta.OpID, meta.EntityID, meta.DeviceID, meta.Clock, string(op.Kind()), string(payload)); err != nil {
		log.Err(err).
			Str("func", "*localVaultStorage.RecordLocalOp").
			Str("op_id", meta.OpID).
			Msg("failed to record local operation")
		return models.OpEnvelope{}, fmt.Errorf("failed to record local operation: %w", err)
	}

	createdAt := time.Now().UTC()
	res, err := tx.ExecContext(ctx, enqueueOutboxOp, meta.OpID, string(payload), meta.DeviceID, createdAt)
	if err != nil {
		log.Err(err).
			Str("func", "*localVaultStorage.RecordLocalOp").
			Str("op_id", meta.OpID).
			Msg("failed to enqueue local operation")
		return models.OpEnvelope{}, fmt.Errorf("failed to enqueue local operation: %w", err)
	}
	queueCursor, err := res.LastInsertId()
	if err != nil {
		return models.OpEnvelope{}, fmt.Errorf("failed to read queue cursor: %w", err)
	}

	if err := l.refoldEntity(ctx, tx, meta.EntityID); err != nil {
		return models.OpEnvelope{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.OpEnvelope{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return models.OpEnvelope{
		Cursor:    queueCursor,
		OpID:      meta.OpID,
		Payload:   string(payload),
		DeviceID:  meta.DeviceID,
		CreatedAt: createdAt,
	}, nil
}

func (l *localVaultStorage) ListOpsSince(ctx context.Context, cursor int64, limit int) ([]models.OpEnvelope, error) {
	rows, err := l.DB.QueryContext(ctx, listOutboxSince, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbound queue: %w", err)
	}
	defer rows.Close()

	envelopes := make([]models.OpEnvelope, 0, limit)
	for rows.Next() {
		var envelope models.OpEnvelope
		if err := rows.Scan(&envelope.Cursor, &envelope.OpID, &envelope.Payload, &envelope.DeviceID, &envelope.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		envelopes = append(envelopes, envelope)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return envelopes, nil
}

func (l *localVaultStorage) PendingOpCount(ctx context.Context, pushedThrough int64) (int, error) {
	var count int
	if err := l.DB.QueryRowContext(ctx, countOutboxSince, pushedThrough).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending operations: %w", err)
	}

	return count, nil
}

// StoreInboxOps stores pulled envelopes, silently skipping operation ids
// that are already present, so re-pulling an overlapping window is safe.
func (l *localVaultStorage) StoreInboxOps(ctx context.Context, ops []models.OpEnvelope) error {
	if len(ops) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, op := range ops {
		if _, err := tx.ExecContext(ctx, insertInboxOp, op.OpID, op.Cursor, op.Payload, op.DeviceID, op.CreatedAt); err != nil {
			return fmt.Errorf("failed to store inbox op %s: %w", op.OpID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ApplyInbox folds all stored unapplied envelopes into local block state.
//
// A conflict is flagged when a remote edit lands on an entity that still has
// an un-pushed local add or edit in the outbound queue: both sides changed
// the text and neither has seen the other. The remote operation is recorded
// and folded regardless; the conflict only surfaces the collision so the
// user can re-assert a choice through a fresh local edit.
//
// Undecodable payloads are skipped and marked applied so one bad envelope
// cannot wedge the inbox forever.
func (l *localVaultStorage) ApplyInbox(ctx context.Context) (models.ApplyResult, error) {
	log := logger.FromContext(ctx)

	pushedThrough := int64(0)
	if cfg, err := l.SyncConfig(ctx); err == nil {
		pushedThrough = cfg.LastPushCursor
	} else if !errors.Is(err, ErrSyncConfigNotFound) {
		return models.ApplyResult{}, err
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ApplyResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	envelopes, err := l.listUnapplied(ctx, tx)
	if err != nil {
		return models.ApplyResult{}, err
	}

	var result models.ApplyResult
	affectedEntities := make(map[string]struct{})

	for _, envelope := range envelopes {
		op, decodeErr := models.DecodeBlockOp([]byte(envelope.Payload))
		if decodeErr != nil {
			log.Warn().
				Str("func", "*localVaultStorage.ApplyInbox").
				Str("op_id", envelope.OpID).
				Err(decodeErr).
				Msg("skipping undecodable inbox payload")
			if _, err := tx.ExecContext(ctx, markInboxApplied, envelope.OpID); err != nil {
				return models.ApplyResult{}, fmt.Errorf("failed to mark inbox op applied: %w", err)
			}
			continue
		}
		meta := op.Meta()

		if edit, ok := op.(models.EditOp); ok {
			conflict, found, confErr := l.detectConflict(ctx, tx, edit, pushedThrough)
			if confErr != nil {
				return models.ApplyResult{}, confErr
			}
			if found {
				result.Conflicts = append(result.Conflicts, conflict)
			}
		}

		res, err := tx.ExecContext(ctx, insertBlockOp,
			meta.OpID, meta.EntityID, meta.DeviceID, meta.Clock, string(op.Kind()), envelope.Payload)
		if err != nil {
			return models.ApplyResult{}, fmt.Errorf("failed to record inbox op %s: %w", meta.OpID, err)
		}
		if inserted, _ := res.RowsAffected(); inserted > 0 {
			result.AppliedCount++
		}
		affectedEntities[meta.EntityID] = struct{}{}

		if _, err := tx.ExecContext(ctx, markInboxApplied, envelope.OpID); err != nil {
			return models.ApplyResult{}, fmt.Errorf("failed to mark inbox op applied: %w", err)
		}
	}

	containers := make(map[string]struct{})
	for entityID := range affectedEntities {
		state, err := l.refoldEntityState(ctx, tx, entityID)
		if err != nil {
			return models.ApplyResult{}, err
		}
		if state.ContainerID != "" {
			containers[state.ContainerID] = struct{}{}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ApplyResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	result.AffectedContainers = make([]string, 0, len(containers))
	for containerID := range containers {
		result.AffectedContainers = append(result.AffectedContainers, containerID)
	}
	sort.Strings(result.AffectedContainers)

	return result, nil
}

// NextClock returns max(recorded clock) + 1 so a fresh local operation
// orders after everything the device has seen, local or remote.
func (l *localVaultStorage) NextClock(ctx context.Context) (int64, error) {
	var maxClock int64
	if err := l.DB.QueryRowContext(ctx, maxRecordedClock).Scan(&maxClock); err != nil {
		return 0, fmt.Errorf("failed to read max clock: %w", err)
	}

	return maxClock + 1, nil
}

func (l *localVaultStorage) Blocks(ctx context.Context, containerID string) ([]models.BlockState, error) {
	rows, err := l.DB.QueryContext(ctx, listBlocksByContainer, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.BlockState
	for rows.Next() {
		var block models.BlockState
		if err := rows.Scan(&block.EntityID, &block.ContainerID, &block.Text, &block.SortKey, &block.Indent, &block.Deleted); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blocks, nil
}

func (l *localVaultStorage) Block(ctx context.Context, entityID string) (models.BlockState, bool, error) {
	var block models.BlockState
	row := l.DB.QueryRowContext(ctx, getBlock, entityID)

	err := row.Scan(&block.EntityID, &block.ContainerID, &block.Text, &block.SortKey, &block.Indent, &block.Deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BlockState{}, false, nil
		}
		return models.BlockState{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return block, true, nil
}

func (l *localVaultStorage) listUnapplied(ctx context.Context, tx *sql.Tx) ([]models.OpEnvelope, error) {
	rows, err := tx.QueryContext(ctx, listUnappliedInbox)
	if err != nil {
		return nil, fmt.Errorf("failed to query inbox: %w", err)
	}
	defer rows.Close()

	var envelopes []models.OpEnvelope
	for rows.Next() {
		var envelope models.OpEnvelope
		if err := rows.Scan(&envelope.OpID, &envelope.Cursor, &envelope.Payload, &envelope.DeviceID, &envelope.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		envelopes = append(envelopes, envelope)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return envelopes, nil
}

func (l *localVaultStorage) detectConflict(ctx context.Context, tx *sql.Tx, edit models.EditOp, pushedThrough int64) (models.Conflict, bool, error) {
	var pending int
	if err := tx.QueryRowContext(ctx, countPendingTextOps, pushedThrough, edit.EntityID).Scan(&pending); err != nil {
		return models.Conflict{}, false, fmt.Errorf("failed to check pending local edits: %w", err)
	}
	if pending == 0 {
		return models.Conflict{}, false, nil
	}

	var localText, containerID string
	row := tx.QueryRowContext(ctx, getBlock, edit.EntityID)
	var block models.BlockState
	if err := row.Scan(&block.EntityID, &block.ContainerID, &block.Text, &block.SortKey, &block.Indent, &block.Deleted); err == nil {
		localText = block.Text
		containerID = block.ContainerID
	} else if !errors.Is(err, sql.ErrNoRows) {
		return models.Conflict{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Conflict{
		OpID:        edit.OpID,
		EntityID:    edit.EntityID,
		ContainerID: containerID,
		LocalText:   localText,
		RemoteText:  edit.Text,
	}, true, nil
}

// refoldEntity recomputes one entity's folded state from its full recorded
// operation log and upserts it into the blocks table.
func (l *localVaultStorage) refoldEntity(ctx context.Context, tx *sql.Tx, entityID string) error {
	_, err := l.refoldEntityState(ctx, tx, entityID)
	return err
}

func (l *localVaultStorage) refoldEntityState(ctx context.Context, tx *sql.Tx, entityID string) (models.BlockState, error) {
	rows, err := tx.QueryContext(ctx, listBlockOpsForEntity, entityID)
	if err != nil {
		return models.BlockState{}, fmt.Errorf("failed to query entity ops: %w", err)
	}
	defer rows.Close()

	var ops []models.BlockOp
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return models.BlockState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		op, decodeErr := models.DecodeBlockOp([]byte(payload))
		if decodeErr != nil {
			// recorded by an incompatible build; ignore in the fold
			continue
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return models.BlockState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	state, ok := models.FoldEntity(entityID, ops)
	if !ok {
		// no add yet; nothing to materialize
		return models.BlockState{}, nil
	}

	if _, err := tx.ExecContext(ctx, upsertBlock,
		state.EntityID, state.ContainerID, state.Text, state.SortKey, state.Indent, state.Deleted); err != nil {
		return models.BlockState{}, fmt.Errorf("failed to upsert folded block: %w", err)
	}

	return state, nil
}
