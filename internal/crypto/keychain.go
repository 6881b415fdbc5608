// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// fingerprintSalt is a fixed application salt. The fingerprint must be
// reproducible on every device holding the same master key, so a per-device
// random salt cannot be used here.
const fingerprintSalt = "go-note-sync/fingerprint/v1"

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters, stored so they can be adjusted per
	// deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// DeriveKey implements [KeyChainService]. It derives the 256-bit vault key
// from masterKey using Argon2id with the parameters stored in the receiver.
func (k *keyChainService) DeriveKey(masterKey string) []byte {
	return argon2.IDKey(
		[]byte(masterKey),
		[]byte(fingerprintSalt),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Fingerprint implements [KeyChainService]. The fingerprint is the SHA-256
// digest of the derived key, hex encoded. Publishing the digest rather than
// the key keeps the server unable to decrypt any payload.
func (k *keyChainService) Fingerprint(masterKey string) string {
	sum := sha256.Sum256(k.DeriveKey(masterKey))
	return hex.EncodeToString(sum[:])
}
