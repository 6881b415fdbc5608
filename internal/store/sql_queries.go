package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createVault = `INSERT INTO vaults (id, key_fingerprint)
    VALUES ($1, $2)
    RETURNING id, key_fingerprint, last_cursor, created_at;`

	getVault = `SELECT id, key_fingerprint, last_cursor, created_at
    FROM vaults
    WHERE id = $1;`

	// registerDevice refreshes last_seen for an already known device, but
	// only when the existing row belongs to the same vault. Re-registering a
	// device id against another vault matches no row, which the repository
	// reports as a mismatch.
	registerDevice = `INSERT INTO devices (id, vault_id)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET last_seen = now()
    WHERE devices.vault_id = EXCLUDED.vault_id
    RETURNING id, vault_id, created_at, last_seen;`

	// lockVaultCursor serialises concurrent pushes into the same vault for
	// the duration of the batch transaction.
	lockVaultCursor = `SELECT last_cursor
    FROM vaults
    WHERE id = $1
    FOR UPDATE;`

	// insertOperation returns no row when the operation id is already stored,
	// so a duplicate never consumes a cursor value.
	insertOperation = `INSERT INTO operations (vault_id, cursor, op_id, payload, device_id)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (vault_id, op_id) DO NOTHING
    RETURNING cursor;`

	updateVaultCursor = `UPDATE vaults
    SET last_cursor = $2
    WHERE id = $1;`

	touchDevice = `UPDATE devices
    SET last_seen = now()
    WHERE id = $1 AND vault_id = $2;`
)

// buildPullOpsQuery builds the paginated log read for one vault: envelopes
// with cursor strictly greater than since, ascending, capped at limit rows.
func buildPullOpsQuery(vaultID string, since int64, limit int) (string, []any, error) {
	return sq.Select("cursor", "op_id", "payload", "device_id", "created_at").
		From("operations").
		Where(sq.Eq{"vault_id": vaultID}).
		Where(sq.Gt{"cursor": since}).
		OrderBy("cursor ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
