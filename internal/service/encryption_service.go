package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the key from a passphrase.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	aesKeyLen     = 32
	minSaltLen    = 16
)

// AESEncryptionService implements ports.EncryptionService using AES-256-GCM.
// It protects the registrar signing key at rest.
type AESEncryptionService struct {
	gcm cipher.AEAD
}

// NewAESEncryptionService creates a service from a 64-character hex key.
func NewAESEncryptionService(hexKey string) (*AESEncryptionService, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != aesKeyLen {
		return nil, fmt.Errorf("AES key must be %d bytes, got %d", aesKeyLen, len(key))
	}
	return newAESEncryptionService(key)
}

// NewAESEncryptionServiceFromPassphrase derives the AES key with Argon2id.
// salt must be at least 16 bytes and stay fixed for a given ciphertext.
func NewAESEncryptionServiceFromPassphrase(passphrase, salt string) (*AESEncryptionService, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("empty passphrase")
	}
	if len(salt) < minSaltLen {
		return nil, fmt.Errorf("salt must be at least %d bytes, got %d", minSaltLen, len(salt))
	}
	key := argon2.IDKey([]byte(passphrase), []byte(salt), argon2Time, argon2Memory, argon2Threads, aesKeyLen)
	return newAESEncryptionService(key)
}

// NewAESEncryptionServiceFromSecrets uses hexKey when set, otherwise it
// derives the key from passphrase and salt.
func NewAESEncryptionServiceFromSecrets(hexKey, passphrase, salt string) (*AESEncryptionService, error) {
	if hexKey != "" {
		return NewAESEncryptionService(hexKey)
	}
	if passphrase != "" {
		return NewAESEncryptionServiceFromPassphrase(passphrase, salt)
	}
	return nil, fmt.Errorf("no AES key or passphrase configured")
}

func newAESEncryptionService(key []byte) (*AESEncryptionService, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESEncryptionService{gcm: gcm}, nil
}

// Encrypt returns hex(nonce || ciphertext).
func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	return hex.EncodeToString(s.gcm.Seal(nonce, nonce, []byte(plaintext), nil)), nil
}

// Decrypt reverses Encrypt.
func (s *AESEncryptionService) Decrypt(ciphertextHex string) (string, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}
	return string(plaintext), nil
}
