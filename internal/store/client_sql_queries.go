// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// initLocalSchema bootstraps the client database. SQLite has no migration
// history here; the schema is additive and guarded by IF NOT EXISTS.
const initLocalSchema = `
	CREATE TABLE IF NOT EXISTS sync_config (
		id               INTEGER PRIMARY KEY CHECK (id = 1),
		server_url       TEXT NOT NULL,
		vault_id         TEXT NOT NULL,
		device_id        TEXT NOT NULL,
		key_fingerprint  TEXT NOT NULL,
		last_push_cursor INTEGER NOT NULL DEFAULT 0,
		last_pull_cursor INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS outbox (
		queue_cursor INTEGER PRIMARY KEY AUTOINCREMENT,
		op_id        TEXT NOT NULL UNIQUE,
		payload      TEXT NOT NULL,
		device_id    TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS inbox (
		op_id      TEXT PRIMARY KEY,
		cursor     INTEGER NOT NULL,
		payload    TEXT NOT NULL,
		device_id  TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		applied    INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS block_ops (
		op_id     TEXT PRIMARY KEY,
		entity_id TEXT NOT NULL,
		device_id TEXT NOT NULL,
		clock     INTEGER NOT NULL,
		kind      TEXT NOT NULL,
		payload   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_block_ops_entity ON block_ops (entity_id);

	CREATE TABLE IF NOT EXISTS blocks (
		entity_id    TEXT PRIMARY KEY,
		container_id TEXT NOT NULL,
		text         TEXT NOT NULL,
		sort_key     TEXT NOT NULL,
		indent       INTEGER NOT NULL,
		deleted      INTEGER NOT NULL DEFAULT 0
	);`

const (
	getSyncConfig = `SELECT server_url, vault_id, device_id, key_fingerprint, last_push_cursor, last_pull_cursor
		FROM sync_config
		WHERE id = 1;`

	saveSyncConfig = `INSERT INTO sync_config (id, server_url, vault_id, device_id, key_fingerprint, last_push_cursor, last_pull_cursor)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			server_url       = excluded.server_url,
			vault_id         = excluded.vault_id,
			device_id        = excluded.device_id,
			key_fingerprint  = excluded.key_fingerprint,
			last_push_cursor = excluded.last_push_cursor,
			last_pull_cursor = excluded.last_pull_cursor;`

	enqueueOutboxOp = `INSERT INTO outbox (op_id, payload, device_id, created_at)
		VALUES ($1, $2, $3, $4);`

	listOutboxSince = `SELECT queue_cursor, op_id, payload, device_id, created_at
		FROM outbox
		WHERE queue_cursor > $1
		ORDER BY queue_cursor ASC
		LIMIT $2;`

	countOutboxSince = `SELECT COUNT(*)
		FROM outbox
		WHERE queue_cursor > $1;`

	insertInboxOp = `INSERT OR IGNORE INTO inbox (op_id, cursor, payload, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5);`

	listUnappliedInbox = `SELECT op_id, cursor, payload, device_id, created_at
		FROM inbox
		WHERE applied = 0
		ORDER BY cursor ASC;`

	markInboxApplied = `UPDATE inbox
		SET applied = 1
		WHERE op_id = $1;`

	insertBlockOp = `INSERT OR IGNORE INTO block_ops (op_id, entity_id, device_id, clock, kind, payload)
		VALUES ($1, $2, $3, $4, $5, $6);`

	listBlockOpsForEntity = `SELECT payload
		FROM block_ops
		WHERE entity_id = $1;`

	// countPendingTextOps detects an un-pushed local add/edit for an entity:
	// it joins the outbound queue beyond the pushed-through cursor with the
	// recorded operation log.
	countPendingTextOps = `SELECT COUNT(*)
		FROM outbox o
		JOIN block_ops b ON b.op_id = o.op_id
		WHERE o.queue_cursor > $1
		  AND b.entity_id = $2
		  AND b.kind IN ('add', 'edit');`

	maxRecordedClock = `SELECT COALESCE(MAX(clock), 0)
		FROM block_ops;`

	upsertBlock = `INSERT INTO blocks (entity_id, container_id, text, sort_key, indent, deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_id) DO UPDATE SET
			container_id = excluded.container_id,
			text         = excluded.text,
			sort_key     = excluded.sort_key,
			indent       = excluded.indent,
			deleted      = excluded.deleted;`

	getBlock = `SELECT entity_id, container_id, text, sort_key, indent, deleted
		FROM blocks
		WHERE entity_id = $1;`

	listBlocksByContainer = `SELECT entity_id, container_id, text, sort_key, indent, deleted
		FROM blocks
		WHERE container_id = $1 AND deleted = 0
		ORDER BY sort_key ASC, entity_id ASC;`
)
