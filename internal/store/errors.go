package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when a query targets a vault id that does
	// not exist in the database.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrDeviceNotFound is returned when an operation references a device id
	// that has not been registered.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrFingerprintMismatch is returned when the key fingerprint presented
	// by a client does not match the fingerprint stored for the vault. The
	// fingerprint is the sole access gate, so a mismatch always rejects the
	// request without touching vault data.
	ErrFingerprintMismatch = errors.New("vault key fingerprint mismatch")

	// ErrDeviceVaultMismatch is returned when a device id is re-registered
	// against a different vault than the one it was created in.
	ErrDeviceVaultMismatch = errors.New("device is registered to another vault")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
