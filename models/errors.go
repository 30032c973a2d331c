package models

import "errors"

// Error taxonomy shared by the crypto, codec and store layers. Concrete
// failures wrap one of these values, so callers classify them with
// [errors.Is] regardless of which layer produced them.
var (
	// ErrIO indicates that reading or writing the store file failed,
	// including the file not existing.
	ErrIO = errors.New("io error")

	// ErrEncoding indicates malformed text: invalid UTF-8 or invalid hex.
	ErrEncoding = errors.New("encoding error")

	// ErrCrypto indicates an AEAD failure: the seal primitive rejected its
	// input or the authentication tag did not verify (wrong passphrase,
	// corrupted or tampered ciphertext).
	ErrCrypto = errors.New("crypto error")

	// ErrFormat indicates a malformed table: wrong field count, bad id,
	// unknown priority token or unparsable completed flag.
	ErrFormat = errors.New("format error")
)
