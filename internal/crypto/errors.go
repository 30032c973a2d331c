package crypto

import "errors"

var (
	// ErrUnknownKDF is returned by [NewKeyDeriver] for an unregistered name.
	ErrUnknownKDF = errors.New("unknown key derivation function")

	// ErrInvalidKeyLength indicates a key that is not [KeySize] bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrBlobTooShort indicates a decoded blob shorter than the nonce.
	ErrBlobTooShort = errors.New("ciphertext too short")

	// ErrAuthenticationFailed indicates a GCM tag mismatch.
	ErrAuthenticationFailed = errors.New("message authentication failed")
)
