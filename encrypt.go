package stash

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

// Encryption errors.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Encryptor seals binary payloads for Save and opens them for Load.
//
// header is the envelope header of the file being written or read. It is
// not encrypted but must be authenticated: Open fails when the header
// differs from the one passed to Seal.
type Encryptor interface {
	Seal(payload, header []byte) ([]byte, error)
	Open(sealed, header []byte) ([]byte, error)
}

// gcmEncryptor seals with an AEAD, nonce prepended to the output.
type gcmEncryptor struct {
	aead cipher.AEAD
}

// AES returns an AES-GCM Encryptor.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encryptor, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &gcmEncryptor{aead: aead}, nil
}

func (e *gcmEncryptor) Seal(payload, header []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(payload)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return e.aead.Seal(nonce, nonce, payload, header), nil
}

func (e *gcmEncryptor) Open(sealed, header []byte) ([]byte, error) {
	n := e.aead.NonceSize()
	if len(sealed) < n+e.aead.Overhead() {
		return nil, ErrCiphertextShort
	}
	payload, err := e.aead.Open(nil, sealed[:n], sealed[n:], header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return payload, nil
}
