package models

import "time"

// Vault identifies one encrypted note collection. A vault is created once,
// on first registration; every later registration with the same id must
// present the same key fingerprint.
type Vault struct {
	// ID is the vault identifier, either requested by the first client or
	// generated server-side.
	ID string `json:"vaultId"`

	// KeyFingerprint binds the vault to its key material. The server never
	// sees the key itself, only this fingerprint.
	KeyFingerprint string `json:"keyFingerprint"`

	// LastCursor is the highest operation cursor assigned in this vault.
	// Server-side bookkeeping; not exposed on the wire.
	LastCursor int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// Device represents one synchronizing client. A device belongs to exactly
// one vault for its lifetime.
type Device struct {
	ID        string    `json:"deviceId"`
	VaultID   string    `json:"vaultId"`
	CreatedAt time.Time `json:"createdAt"`

	// LastSeen is refreshed on every successful push.
	LastSeen time.Time `json:"lastSeen"`
}
