// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	// NonceSize is the GCM nonce length prepended to every blob.
	NonceSize = 12
	// TagSize is the GCM authentication tag length appended by Seal.
	TagSize = 16
)

// aesGCMCipher is the AES-256-GCM implementation of [Cipher].
type aesGCMCipher struct {
	random io.Reader
}

// NewAESGCMCipher constructs a [Cipher] that draws nonces from crypto/rand.
func NewAESGCMCipher() Cipher {
	return &aesGCMCipher{random: rand.Reader}
}

// Seal implements [Cipher]. blob = hex(nonce ‖ ciphertext ‖ tag).
func (c *aesGCMCipher) Seal(plaintext, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", models.ErrCrypto, err)
	}

	// Seal appends ciphertext and tag right after the nonce.
	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(blob), nil
}

// Open implements [Cipher].
func (c *aesGCMCipher) Open(encoded string, key []byte) ([]byte, error) {
	blob, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %w", models.ErrEncoding, err)
	}
	if len(blob) < NonceSize {
		return nil, fmt.Errorf("%w: %w: got %d bytes", models.ErrEncoding, ErrBlobTooShort, len(blob))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]

	// An error here almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrCrypto, ErrAuthenticationFailed)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %w: got %d bytes", models.ErrCrypto, ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", models.ErrCrypto, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", models.ErrCrypto, err)
	}

	return gcm, nil
}
