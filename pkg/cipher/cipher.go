package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrDecrypt is returned when ciphertext is malformed or was produced under
// a different key. Callers treat it like a failed credential check and must
// not expose the underlying detail.
var ErrDecrypt = errors.New("cipher: decryption failed")

const keyInfo = "aptipro-password-cipher-v1"

// Cipher performs reversible symmetric encryption under one static key.
// Encryption uses AES-256-GCM with a fresh random nonce per call, so two
// encryptions of the same plaintext never match while both stay invertible.
type Cipher struct {
	aead cipher.AEAD
}

// New derives a 256-bit key from the configured key material via
// HKDF-SHA256 and prepares the AEAD. The same key string always yields the
// same derived key.
func New(key string) (*Cipher, error) {
	if key == "" {
		return nil, errors.New("cipher: empty key")
	}

	derived := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(key), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, derived); err != nil {
		return nil, fmt.Errorf("cipher: derive key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("cipher: init aes: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher: init gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with a random nonce. The nonce is prepended to the
// returned ciphertext.
func (c *Cipher) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cipher: nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Decrypt inverts Encrypt. Any tampering, truncation or key mismatch yields
// ErrDecrypt.
func (c *Cipher) Decrypt(ciphertext []byte) (string, error) {
	if len(ciphertext) < c.aead.NonceSize() {
		return "", ErrDecrypt
	}
	nonce, sealed := ciphertext[:c.aead.NonceSize()], ciphertext[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plaintext), nil
}
