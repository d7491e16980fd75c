//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/bslater/threefish-vault/internal/pkg/config"
)

// TestCryptoKeyGenerationService_Generate_Success uses table-driven tests for the supported key sizes
func TestCryptoKeyGenerationService_Generate_Success(t *testing.T) {
	tests := []struct {
		name             string
		keySize          uint32
		expectedKeyBytes int
	}{
		{
			name:             "Threefish-256 key",
			keySize:          256,
			expectedKeyBytes: crypto.ThreefishKeySize256,
		},
		{
			name:             "Threefish-512 key",
			keySize:          512,
			expectedKeyBytes: crypto.ThreefishKeySize512,
		},
		{
			name:             "Threefish-1024 key",
			keySize:          1024,
			expectedKeyBytes: crypto.ThreefishKeySize1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType)
			userID := uuid.NewString()

			keyMeta, keyBytes, err := services.CryptoKeyGenerationService.Generate(context.Background(), userID, tt.keySize)
			require.NoError(t, err)
			require.NotNil(t, keyMeta)

			assert.Equal(t, crypto.AlgorithmThreefish, keyMeta.Algorithm)
			assert.Equal(t, crypto.KeyTypeSymmetric, keyMeta.Type)
			assert.Equal(t, tt.keySize, keyMeta.KeySize)
			assert.Equal(t, userID, keyMeta.UserID)
			assert.Len(t, keyBytes, tt.expectedKeyBytes)

			// The metadata must be persisted; the key material must not be.
			stored, err := services.CryptoKeyMetadataService.GetByID(context.Background(), keyMeta.ID)
			require.NoError(t, err)
			assert.Equal(t, keyMeta.ID, stored.ID)
		})
	}
}

func TestCryptoKeyGenerationService_Generate_UnsupportedKeySize(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, _, err := services.CryptoKeyGenerationService.Generate(context.Background(), uuid.NewString(), 192)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestCryptoKeyMetadataService_List(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	for _, keySize := range []uint32{256, 512} {
		_, _, err := services.CryptoKeyGenerationService.Generate(context.Background(), userID, keySize)
		require.NoError(t, err)
	}

	query := keys.NewCryptoKeyQuery()
	metas, err := services.CryptoKeyMetadataService.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, metas, 2)
}

func TestCryptoKeyMetadataService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	keyMeta, _, err := services.CryptoKeyGenerationService.Generate(context.Background(), uuid.NewString(), 256)
	require.NoError(t, err)

	require.NoError(t, services.CryptoKeyMetadataService.DeleteByID(context.Background(), keyMeta.ID))

	_, err = services.CryptoKeyMetadataService.GetByID(context.Background(), keyMeta.ID)
	assert.Error(t, err)
}

func TestCryptoKeyMetadataService_DeleteByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	err := services.CryptoKeyMetadataService.DeleteByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
}
