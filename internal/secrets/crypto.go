package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
)

// KeySource supplies the 32-byte encryption key. *KeyProvider implements it.
type KeySource interface {
	Key() ([]byte, error)
}

// Encryptor seals plaintext into hex blobs with AES-256-GCM.
type Encryptor struct {
	keys KeySource
	rand io.Reader
}

// NewEncryptor creates an Encryptor that draws IVs from crypto/rand.
func NewEncryptor(keys KeySource) *Encryptor {
	return &Encryptor{keys: keys, rand: rand.Reader}
}

// Encrypt returns hex(IV || ciphertext || tag) for plaintext. Every call uses
// a fresh random IV, so encrypting the same text twice gives different blobs.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", kerrors.Validation("encrypt", "plaintext is empty")
	}
	if !utf8.ValidString(plaintext) {
		return "", kerrors.Validation("encrypt", "plaintext is not valid UTF-8")
	}

	key, err := e.keys.Key()
	if err != nil {
		return "", err
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(e.rand, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	// Seal returns ciphertext || tag.
	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return EncodeBlob(iv, ciphertext, tag)
}

// Decryptor opens hex blobs produced by an Encryptor.
type Decryptor struct {
	keys KeySource
}

// NewDecryptor creates a Decryptor.
func NewDecryptor(keys KeySource) *Decryptor {
	return &Decryptor{keys: keys}
}

// Decrypt verifies and decrypts blob. It returns either the exact original
// plaintext or an error, never partial output.
func (d *Decryptor) Decrypt(blob string) (string, error) {
	frame, err := DecodeBlob(blob)
	if err != nil {
		return "", err
	}

	key, err := d.keys.Key()
	if err != nil {
		return "", err
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(frame.Ciphertext)+TagSize)
	sealed = append(sealed, frame.Ciphertext...)
	sealed = append(sealed, frame.Tag...)

	plaintext, err := aead.Open(nil, frame.IV, sealed, nil)
	if err != nil {
		return "", kerrors.Authentication("decrypt", "data was tampered with or the key is wrong", err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, kerrors.Configuration("key", fmt.Sprintf("invalid key length: expected %d bytes, got %d bytes", KeySize, len(key)), nil)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES block cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES-GCM instance: %w", err)
	}

	return aead, nil
}
