package adapter

import "errors"

var (
	// ErrServerUnreachable wraps transport-level failures (DNS, refused
	// connection, timeout). The engine treats it as "offline", not "error".
	ErrServerUnreachable = errors.New("sync server unreachable")

	// ErrFingerprintMismatch is mapped from HTTP 403 and 409: the presented
	// key fingerprint does not match the vault's stored one.
	ErrFingerprintMismatch = errors.New("vault key fingerprint rejected")

	// ErrVaultNotFound is mapped from HTTP 404.
	ErrVaultNotFound = errors.New("vault or device not found on server")

	// ErrBadRequest is mapped from HTTP 400.
	ErrBadRequest = errors.New("server rejected request")

	// ErrServer is mapped from any other non-2xx response and carries the
	// response body verbatim.
	ErrServer = errors.New("server error")
)
