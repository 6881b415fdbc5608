package models

import "time"

// OpEnvelope is the server-stored unit of replication. The payload is an
// opaque string (typically ciphertext); the server never parses it.
//
// Cursor is assigned by the server at insert time, strictly increasing per
// vault and never reused. Cursor order equals commit order, not client-clock
// order; it exists for pagination and replication-position tracking only.
type OpEnvelope struct {
	Cursor    int64     `json:"cursor"`
	OpID      string    `json:"opId"`
	Payload   string    `json:"payload"`
	DeviceID  string    `json:"deviceId"`
	CreatedAt time.Time `json:"createdAt"`
}

// OpRecord is the client-supplied part of an envelope: a caller-assigned,
// per-vault unique operation id plus the opaque payload.
type OpRecord struct {
	OpID    string `json:"opId"`
	Payload string `json:"payload"`
}

// CreateVaultRequest is the body of POST /v1/vaults. VaultID is optional;
// when absent the server generates one.
type CreateVaultRequest struct {
	KeyFingerprint string `json:"keyFingerprint"`
	VaultID        string `json:"vaultId,omitempty"`
}

type CreateVaultResponse struct {
	VaultID string `json:"vaultId"`
}

// RegisterDeviceRequest is the body of POST /v1/devices. DeviceID is
// optional; re-registering an existing id refreshes its last-seen stamp.
type RegisterDeviceRequest struct {
	VaultID        string `json:"vaultId"`
	KeyFingerprint string `json:"keyFingerprint"`
	DeviceID       string `json:"deviceId,omitempty"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"deviceId"`
}

// PushRequest is the body of POST /v1/ops/push.
type PushRequest struct {
	VaultID  string     `json:"vaultId"`
	DeviceID string     `json:"deviceId"`
	Ops      []OpRecord `json:"ops"`
}

// PushResponse reports how many operations were newly inserted and the
// vault's current maximum cursor after the batch. Re-pushing an already
// stored operation id is not an error; it simply does not count as accepted.
type PushResponse struct {
	Accepted int   `json:"accepted"`
	Cursor   int64 `json:"cursor"`
}

// PullResponse carries envelopes with cursor greater than the requested
// position, in ascending cursor order. NextCursor is the cursor of the last
// returned envelope, or the requested position unchanged when nothing
// matched ("no progress" means "caught up", not an error).
type PullResponse struct {
	Ops        []OpEnvelope `json:"ops"`
	NextCursor int64        `json:"nextCursor"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
