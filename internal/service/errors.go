package service

import "errors"

var (
	ErrValidationNoFingerprint = errors.New("no key fingerprint provided")
	ErrValidationNoVaultID     = errors.New("no vault ID provided")
	ErrValidationNoDeviceID    = errors.New("no device ID provided")
	ErrValidationNoOpsProvided = errors.New("no operations provided")
	ErrValidationEmptyOpID     = errors.New("operation with empty ID provided")
	ErrValidationNoServerURL   = errors.New("no server URL provided")

	ErrNotConnected          = errors.New("sync is not configured")
	ErrNoEncryptionKey       = errors.New("no master key provided")
	ErrConflictNotFound      = errors.New("conflict not found")
	ErrUnknownConflictChoice = errors.New("unknown conflict resolution choice")
)
