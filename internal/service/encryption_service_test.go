package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid 32-byte key in hex (64 chars)
const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestAESEncryptionService_NewInvalidKey(t *testing.T) {
	_, err := NewAESEncryptionService("shortkey")
	assert.Error(t, err)

	_, err = NewAESEncryptionService("0123456789abcdef")
	assert.Error(t, err)
}

func TestAESEncryptionService_EncryptDecrypt(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("1234567890", "user-1")
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "1234567890")

	decrypted, err := svc.Decrypt(ciphertext, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", decrypted)
}

func TestAESEncryptionService_DifferentNonces(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	c1, err := svc.Encrypt("8800112233", "user-1")
	require.NoError(t, err)
	c2, err := svc.Encrypt("8800112233", "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "same plaintext should produce different ciphertext due to random nonce")
}

func TestAESEncryptionService_WrongAssociatedData(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("8800112233", "user-1")
	require.NoError(t, err)

	_, err = svc.Decrypt(ciphertext, "user-2")
	assert.Error(t, err, "ciphertext copied to another owner must not open")
}

func TestAESEncryptionService_TamperedCiphertext(t *testing.T) {
	svc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	ciphertext, err := svc.Encrypt("secret", "")
	require.NoError(t, err)

	last := ciphertext[len(ciphertext)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	tampered := ciphertext[:len(ciphertext)-1] + string(flipped)

	_, err = svc.Decrypt(tampered, "")
	assert.Error(t, err)
}

func TestAESEncryptionService_WrongKey(t *testing.T) {
	svc1, _ := NewAESEncryptionService(testAESKey)
	otherKey := "abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789"
	svc2, _ := NewAESEncryptionService(otherKey)

	ciphertext, err := svc1.Encrypt("8800112233", "user-1")
	require.NoError(t, err)

	_, err = svc2.Decrypt(ciphertext, "user-1")
	assert.Error(t, err)
}

func TestAESEncryptionService_InvalidCiphertext(t *testing.T) {
	svc, _ := NewAESEncryptionService(testAESKey)

	_, err := svc.Decrypt("not-hex-at-all!!!", "")
	assert.Error(t, err)

	_, err = svc.Decrypt("abcdef", "")
	assert.Error(t, err)
}
