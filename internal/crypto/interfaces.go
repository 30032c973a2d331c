package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a user passphrase into a fixed-size symmetric key.
//
// Implementations are deterministic: the same passphrase always derives the
// same key, because no salt is stored next to the encrypted file.
type KeyDeriver interface {
	// DeriveKey returns exactly [KeySize] bytes for passphrase.
	DeriveKey(passphrase []byte) []byte
}

// Cipher seals and opens opaque payloads under a [KeySize]-byte key.
//
// The sealed form is a lowercase hex string of
//
//	nonce (NonceSize bytes) ‖ ciphertext ‖ tag (TagSize bytes)
//
// and is self-contained: nothing else is needed to open it besides the key.
type Cipher interface {
	// Seal encrypts plaintext with a fresh random nonce and returns the
	// hex-encoded blob. Sealing the same plaintext twice yields different
	// blobs.
	Seal(plaintext, key []byte) (string, error)

	// Open decodes and decrypts a blob produced by Seal. It fails with an
	// error wrapping models.ErrEncoding for malformed hex or short input and
	// models.ErrCrypto when authentication fails. No plaintext is returned
	// on failure.
	Open(blob string, key []byte) ([]byte, error)
}
