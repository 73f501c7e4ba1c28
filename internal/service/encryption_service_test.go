package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid 32-byte key in hex (64 chars)
const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

const testSignerKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestAESEncryptionService_NewInvalidKey(t *testing.T) {
	_, err := NewAESEncryptionService("shortkey")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("abcd")
	assert.Error(t, err)
}

func TestAESEncryptionService_EncryptDecrypt(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt(testSignerKey)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, testSignerKey)

	decrypted, err := svc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, testSignerKey, decrypted)
}

func TestAESEncryptionService_DifferentNonces(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	c1, err := svc.Encrypt("key")
	require.NoError(t, err)
	c2, err := svc.Encrypt("key")
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "same plaintext should produce different ciphertext due to random nonce")
}

func TestAESEncryptionService_TamperedCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("secret")
	require.NoError(t, err)

	tampered := ciphertext[:len(ciphertext)-2] + "ff"
	if tampered == ciphertext {
		tampered = ciphertext[:len(ciphertext)-2] + "00"
	}
	_, err = svc.Decrypt(tampered)
	assert.Error(t, err)

	_, err = svc.Decrypt("zz")
	assert.Error(t, err)
	_, err = svc.Decrypt("abcd")
	assert.Error(t, err)
}

func TestAESEncryptionService_FromPassphrase(t *testing.T) {
	salt := "chatmint-salt-0001"

	svc1, err := NewAESEncryptionServiceFromPassphrase("correct horse", salt)
	require.NoError(t, err)
	svc2, err := NewAESEncryptionServiceFromPassphrase("correct horse", salt)
	require.NoError(t, err)
	other, err := NewAESEncryptionServiceFromPassphrase("wrong horse", salt)
	require.NoError(t, err)

	ciphertext, err := svc1.Encrypt(testSignerKey)
	require.NoError(t, err)

	plain, err := svc2.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, testSignerKey, plain)

	_, err = other.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestAESEncryptionService_FromPassphrase_Invalid(t *testing.T) {
	_, err := NewAESEncryptionServiceFromPassphrase("", "chatmint-salt-0001")
	assert.Error(t, err)

	_, err = NewAESEncryptionServiceFromPassphrase("pass", "short")
	assert.Error(t, err)
}

func TestAESEncryptionService_FromSecrets(t *testing.T) {
	byKey, err := NewAESEncryptionServiceFromSecrets(testAESKey, "ignored", "ignored")
	require.NoError(t, err)
	direct, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ct, err := byKey.Encrypt(testSignerKey)
	require.NoError(t, err)
	pt, err := direct.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, testSignerKey, pt, "the hex key wins over the passphrase")

	_, err = NewAESEncryptionServiceFromSecrets("", "correct horse", "chatmint-salt-0001")
	assert.NoError(t, err)

	_, err = NewAESEncryptionServiceFromSecrets("", "", "")
	assert.Error(t, err)
}
