package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService derives the vault key material identity on the client.
// The master key itself never leaves the process; only the fingerprint is
// sent to the server, where it gates vault and device registration.
type KeyChainService interface {
	// DeriveKey stretches the user's master key into a 256-bit vault key.
	DeriveKey(masterKey string) []byte

	// Fingerprint returns the hex-encoded identity of the vault key derived
	// from masterKey. Deterministic: every device configured with the same
	// master key computes the same fingerprint.
	Fingerprint(masterKey string) string
}
