package models

import "time"

// SyncConfig is the client-local replication identity and cursor pair for
// one vault. It is mutated by the sync engine only after a corresponding
// server response has been durably received, never optimistically.
type SyncConfig struct {
	ServerURL      string `json:"server_url"`
	VaultID        string `json:"vault_id"`
	DeviceID       string `json:"device_id"`
	KeyFingerprint string `json:"key_fingerprint"`

	// LastPushCursor is the local outbound-queue position up to which
	// operations have been pushed to the server.
	LastPushCursor int64 `json:"last_push_cursor"`

	// LastPullCursor is the server-side cursor up to which remote
	// operations have been pulled.
	LastPullCursor int64 `json:"last_pull_cursor"`
}

// SyncState describes the engine's connection state as shown to the UI.
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateOffline SyncState = "offline"
	SyncStateError   SyncState = "error"
)

// SyncStatus is the ephemeral, per-cycle snapshot of the engine. It is
// rebuilt every cycle and never persisted.
type SyncStatus struct {
	State          SyncState  `json:"state"`
	PendingOps     int        `json:"pending_ops"`
	LastSyncedAt   *time.Time `json:"last_synced_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	LastPushCount  int        `json:"last_push_count"`
	LastPullCount  int        `json:"last_pull_count"`
	LastApplyCount int        `json:"last_apply_count"`
}

// Conflict is produced when an incoming remote operation and an un-pushed
// local operation both mutate the same entity's text. It lives until the
// user resolves it or the process exits; resolution is re-applied through
// the normal push path, never a side channel.
type Conflict struct {
	OpID        string `json:"operation_id"`
	EntityID    string `json:"entity_id"`
	ContainerID string `json:"container_id"`
	LocalText   string `json:"local_text"`
	RemoteText  string `json:"remote_text"`
}

// ConflictChoice selects how a conflict is resolved.
type ConflictChoice string

const (
	ConflictKeepLocal  ConflictChoice = "local"
	ConflictKeepRemote ConflictChoice = "remote"
	ConflictMerge      ConflictChoice = "merge"
)

// ApplyResult reports the outcome of folding stored inbox envelopes into
// local block state.
type ApplyResult struct {
	AppliedCount       int
	AffectedContainers []string
	Conflicts          []Conflict
}

// CycleResult summarizes one completed sync cycle. The UI layer polls it
// (or receives it from a manual trigger) instead of the engine holding UI
// references.
type CycleResult struct {
	Pushed             int
	Pulled             int
	Applied            int
	AffectedContainers []string
}
