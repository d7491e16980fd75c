//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/bslater/threefish-vault/internal/domain/crypto"
	pkgTesting "github.com/bslater/threefish-vault/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSymmetricProcessor(t *testing.T) crypto.SymmetricProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	processor, err := NewSymmetricProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestSymmetricProcessor(t *testing.T) {
	processor := setupSymmetricProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, err := processor.GenerateKey(crypto.ThreefishKeySize256)
		assert.NoError(t, err)

		plainText := []byte("This is a test message.")

		ciphertext, err := processor.Encrypt(plainText, key)
		assert.NoError(t, err)
		assert.NotNil(t, ciphertext)
		assert.Greater(t, len(ciphertext), 0)

		decryptedText, err := processor.Decrypt(ciphertext, key)
		assert.NoError(t, err)
		assert.NotNil(t, decryptedText)
		assert.Equal(t, plainText, decryptedText)
	})

	t.Run("EncryptDecryptAllKeySizes", func(t *testing.T) {
		plainText := []byte("Round trip across every Threefish variant.")

		for _, keySize := range []int{crypto.ThreefishKeySize256, crypto.ThreefishKeySize512, crypto.ThreefishKeySize1024} {
			key, err := processor.GenerateKey(keySize)
			require.NoError(t, err)

			ciphertext, err := processor.Encrypt(plainText, key)
			require.NoError(t, err)

			decryptedText, err := processor.Decrypt(ciphertext, key)
			require.NoError(t, err)
			assert.Equal(t, plainText, decryptedText)
		}
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		key := []byte("shortkey")
		plainText := []byte("This is a test.")

		_, err := processor.Encrypt(plainText, key)
		assert.Error(t, err)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey(crypto.ThreefishKeySize256)
		assert.NoError(t, err)
		assert.Equal(t, crypto.ThreefishKeySize256, len(key))

		key1024, err := processor.GenerateKey(crypto.ThreefishKeySize1024)
		assert.NoError(t, err)
		assert.Equal(t, crypto.ThreefishKeySize1024, len(key1024))

		_, err = processor.GenerateKey(48)
		assert.Error(t, err)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(crypto.ThreefishKeySize256)
		assert.NoError(t, err)

		plainText := []byte("Test decryption with wrong key.")
		ciphertext, err := processor.Encrypt(plainText, key)
		assert.NoError(t, err)

		wrongKey, err := processor.GenerateKey(crypto.ThreefishKeySize256)
		assert.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, wrongKey)

		if err == nil {
			assert.NotEqual(t, plainText, decrypted, "Decryption with wrong key should not return original message")
		} else {
			assert.Error(t, err, "Expected an error when decrypting with wrong key")
		}
	})

	t.Run("DecryptShortCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(crypto.ThreefishKeySize256)
		assert.NoError(t, err)

		_, err = processor.Decrypt([]byte("short"), key)
		assert.Error(t, err)
	})

	t.Run("EncryptEmptyPlaintext", func(t *testing.T) {
		key, err := processor.GenerateKey(crypto.ThreefishKeySize512)
		require.NoError(t, err)

		ciphertext, err := processor.Encrypt([]byte{}, key)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, key)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})
}
