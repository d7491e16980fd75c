//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/bslater/threefish-vault/internal/infrastructure/cryptography"
	"github.com/bslater/threefish-vault/internal/infrastructure/persistence"
	pkgTesting "github.com/bslater/threefish-vault/internal/pkg/testing"
	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CryptoKeyGenerationService keys.CryptoKeyGenerationService
	CryptoKeyMetadataService   keys.CryptoKeyMetadataService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup cryptographic processor
	symmetricProcessor, err := cryptography.NewSymmetricProcessor(logger)
	require.NoError(t, err, "Failed to create symmetric processor")

	// Setup services
	generationService, err := NewCryptoKeyGenerationService(dbContext.CryptoKeyRepo, symmetricProcessor, logger)
	require.NoError(t, err, "Failed to create key generation service")

	metadataService, err := NewCryptoKeyMetadataService(dbContext.CryptoKeyRepo, logger)
	require.NoError(t, err, "Failed to create key metadata service")

	return &TestServices{
		CryptoKeyGenerationService: generationService,
		CryptoKeyMetadataService:   metadataService,
		DBContext:                  dbContext,
	}
}
