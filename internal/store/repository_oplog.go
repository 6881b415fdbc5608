// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// opLogRepository is the PostgreSQL-backed implementation of
// [OpLogRepository]. It appends to and reads from the "operations" table,
// the per-vault append-only log.
type opLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewOpLogRepository constructs an [OpLogRepository] backed by the provided
// database connection and logger.
func NewOpLogRepository(db *DB, logger *logger.Logger) OpLogRepository {
	logger.Debug().Msg("creating operation log repository")
	return &opLogRepository{
		DB:     db,
		logger: logger,
	}
}

// PushOps appends a batch of operations to the vault's log in one
// transaction. The vault row is locked for the duration of the batch, so
// cursor assignment stays strictly increasing and gap-free even under
// concurrent pushes from several devices.
//
// An operation whose id is already stored inserts no row and consumes no
// cursor; it simply does not count towards accepted. After the batch the
// vault's last_cursor is advanced and the pushing device's last_seen is
// refreshed in the same transaction.
//
// Error handling:
//   - vault id unknown → [ErrVaultNotFound].
//   - device id unknown (FK violation) → [ErrDeviceNotFound].
//   - transaction begin/commit failure → [ErrBeginningTransaction] / [ErrCommitingTransaction].
//   - any other driver-level failure → wrapped with [ErrExecutingQuery].
func (r *opLogRepository) PushOps(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*opLogRepository.PushOps").Msg("failed to begin push transaction")
		return 0, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var lastCursor int64
	if err := tx.QueryRowContext(ctx, lockVaultCursor, vaultID).Scan(&lastCursor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, ErrVaultNotFound
		}

		log.Err(err).Str("func", "*opLogRepository.PushOps").Str("vault_id", vaultID).Msg("failed to lock vault cursor")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	accepted := 0
	for _, op := range ops {
		var assigned int64
		insertErr := tx.QueryRowContext(ctx, insertOperation, vaultID, lastCursor+1, op.OpID, op.Payload, deviceID).Scan(&assigned)
		switch {
		case errors.Is(insertErr, sql.ErrNoRows):
			// duplicate operation id, already stored
			continue
		case insertErr != nil:
			if r.DB.errorClassificator.Classify(insertErr) == Retryable {
				log.Warn().
					Str("func", "*opLogRepository.PushOps").
					Str("vault_id", vaultID).
					Msg("transient database error, the client may retry the batch")
			}
			if postgresError(insertErr) == pgerrcode.ForeignKeyViolation {
				return 0, 0, ErrDeviceNotFound
			}

			log.Err(insertErr).
				Str("func", "*opLogRepository.PushOps").
				Str("vault_id", vaultID).
				Str("op_id", op.OpID).
				Msg("failed to insert operation")
			return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, insertErr)
		}

		lastCursor = assigned
		accepted++
	}

	if _, err := tx.ExecContext(ctx, updateVaultCursor, vaultID, lastCursor); err != nil {
		log.Err(err).Str("func", "*opLogRepository.PushOps").Str("vault_id", vaultID).Msg("failed to advance vault cursor")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, touchDevice, deviceID, vaultID); err != nil {
		log.Err(err).Str("func", "*opLogRepository.PushOps").Str("device_id", deviceID).Msg("failed to refresh device last_seen")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*opLogRepository.PushOps").Str("vault_id", vaultID).Msg("failed to commit push transaction")
		return 0, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return accepted, lastCursor, nil
}

// PullOps reads up to limit envelopes with cursor strictly greater than
// since, in ascending cursor order. An exhausted log yields an empty slice,
// not an error.
func (r *opLogRepository) PullOps(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPullOpsQuery(vaultID, since, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*opLogRepository.PullOps").
			Str("vault_id", vaultID).
			Msg("failed to build pull query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*opLogRepository.PullOps").
			Str("vault_id", vaultID).
			Int64("since", since).
			Msg("failed to execute pull query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	envelopes := make([]models.OpEnvelope, 0, limit)

	for rows.Next() {
		var envelope models.OpEnvelope

		scanErr := rows.Scan(
			&envelope.Cursor,
			&envelope.OpID,
			&envelope.Payload,
			&envelope.DeviceID,
			&envelope.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*opLogRepository.PullOps").
				Str("vault_id", vaultID).
				Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		envelopes = append(envelopes, envelope)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*opLogRepository.PullOps").
			Str("vault_id", vaultID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return envelopes, nil
}
