package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	c := NewAESGCMCipher()
	key := testKey(0x2A)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"csv", []byte("id,title,description,priority,completed\n1,a,b,Low,false\n")},
		{"binary", []byte{0x00, 0xFF, 0x10, 0x80}},
		{"large", bytes.Repeat([]byte("x"), 1<<16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := c.Seal(tt.plaintext, key)
			require.NoError(t, err)

			got, err := c.Open(blob, key)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.plaintext, got))
		})
	}
}

func TestSeal_BlobLayout(t *testing.T) {
	c := NewAESGCMCipher()
	plaintext := []byte("hello")

	blob, err := c.Seal(plaintext, testKey(0x01))
	require.NoError(t, err)

	assert.Equal(t, strings.ToLower(blob), blob, "blob must be lowercase hex")
	raw, err := hex.DecodeString(blob)
	require.NoError(t, err)
	assert.Len(t, raw, NonceSize+len(plaintext)+TagSize)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	c := NewAESGCMCipher()
	key := testKey(0x2A)
	plaintext := []byte("same plaintext")

	b1, err := c.Seal(plaintext, key)
	require.NoError(t, err)
	b2, err := c.Seal(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, b1[:NonceSize*2], b2[:NonceSize*2], "nonces must differ")
	assert.NotEqual(t, b1, b2)

	p1, err := c.Open(b1, key)
	require.NoError(t, err)
	p2, err := c.Open(b2, key)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestOpen_WrongKey(t *testing.T) {
	c := NewAESGCMCipher()

	blob, err := c.Seal([]byte("secret"), testKey(0x01))
	require.NoError(t, err)

	got, err := c.Open(blob, testKey(0x02))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrCrypto)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpen_Tampered(t *testing.T) {
	c := NewAESGCMCipher()
	key := testKey(0x03)

	blob, err := c.Seal([]byte("do not touch"), key)
	require.NoError(t, err)

	raw, err := hex.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	got, err := c.Open(hex.EncodeToString(raw), key)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrCrypto)
}

func TestOpen_EncodingErrors(t *testing.T) {
	c := NewAESGCMCipher()
	key := testKey(0x04)

	tests := []struct {
		name string
		blob string
	}{
		{"not hex", "id,title,description,priority,completed"},
		{"odd length", "abc"},
		{"shorter than nonce", hex.EncodeToString(make([]byte, NonceSize-1))},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Open(tt.blob, key)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, models.ErrEncoding)
			assert.False(t, errors.Is(err, models.ErrCrypto))
		})
	}
}

func TestOpen_NonceOnlyFailsAuthentication(t *testing.T) {
	c := NewAESGCMCipher()

	_, err := c.Open(hex.EncodeToString(make([]byte, NonceSize)), testKey(0x05))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrCrypto)
}

func TestOpen_AcceptsUppercaseHex(t *testing.T) {
	c := NewAESGCMCipher()
	key := testKey(0x06)

	blob, err := c.Seal([]byte("upper"), key)
	require.NoError(t, err)

	got, err := c.Open(strings.ToUpper(blob), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("upper"), got)
}

func TestSealOpen_InvalidKeyLength(t *testing.T) {
	c := NewAESGCMCipher()

	_, err := c.Seal([]byte("x"), []byte("short"))
	assert.ErrorIs(t, err, models.ErrCrypto)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	blob, err := c.Seal([]byte("x"), testKey(0x07))
	require.NoError(t, err)
	_, err = c.Open(blob, testKey(0x07)[:16])
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestSeal_RandomSourceFailure(t *testing.T) {
	c := &aesGCMCipher{random: failingReader{}}

	blob, err := c.Seal([]byte("x"), testKey(0x08))
	require.Error(t, err)
	assert.Empty(t, blob)
	assert.ErrorIs(t, err, models.ErrCrypto)
}
