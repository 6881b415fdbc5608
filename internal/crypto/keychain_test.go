package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := NewKeyChainService()
	b := NewKeyChainService()

	// two "devices" configured with the same master key must agree
	assert.Equal(t, a.Fingerprint("correct horse battery staple"), b.Fingerprint("correct horse battery staple"))
}

func TestFingerprint_DistinguishesKeys(t *testing.T) {
	k := NewKeyChainService()

	assert.NotEqual(t, k.Fingerprint("key-a"), k.Fingerprint("key-b"))
}

func TestFingerprint_HexEncoded(t *testing.T) {
	k := NewKeyChainService()

	fp := k.Fingerprint("some key")
	require.Len(t, fp, 64) // SHA-256, hex
	for _, r := range fp {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestDeriveKey_Length(t *testing.T) {
	k := NewKeyChainService()

	require.Len(t, k.DeriveKey("any"), 32)
}
