// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// KeySize is the length in bytes of every derived key (AES-256).
const KeySize = 32

// Names accepted by [NewKeyDeriver].
const (
	KDFSHA256   = "sha256"
	KDFArgon2ID = "argon2id"
)

// argon2Salt is a fixed, public application salt. It does not protect
// against precomputation across installations; it only makes the
// derivation deterministic without storing any metadata in the file.
var argon2Salt = []byte("go-task-keeper/argon2id/v1")

// NewKeyDeriver returns the deriver registered under name. The match is
// case-insensitive; an unknown name yields [ErrUnknownKDF].
func NewKeyDeriver(name string) (KeyDeriver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case KDFSHA256:
		return NewSHA256Deriver(), nil
	case KDFArgon2ID:
		return NewArgon2Deriver(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, name)
	}
}

type sha256Deriver struct{}

// NewSHA256Deriver returns the default deriver: a single unsalted SHA-256
// of the passphrase. It is cheap to brute-force offline and is meant for a
// low-threat local tool only.
func NewSHA256Deriver() KeyDeriver {
	return sha256Deriver{}
}

// DeriveKey implements [KeyDeriver].
func (sha256Deriver) DeriveKey(passphrase []byte) []byte {
	sum := sha256.Sum256(passphrase)
	return sum[:]
}

// argon2Deriver is the memory-hard alternative to [sha256Deriver].
type argon2Deriver struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewArgon2Deriver constructs an Argon2id deriver with the OWASP (2024)
// parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// Files sealed with it cannot be opened with the SHA-256 deriver and vice
// versa; the file format itself is unchanged.
func NewArgon2Deriver() KeyDeriver {
	return &argon2Deriver{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// DeriveKey implements [KeyDeriver].
func (a *argon2Deriver) DeriveKey(passphrase []byte) []byte {
	return argon2.IDKey(passphrase, argon2Salt, a.argonTime, a.argonMemory, a.argonThreads, KeySize)
}
