package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/bslater/threefish-vault/internal/pkg/logger"
	"github.com/google/uuid"
)

// cryptoKeyGenerationService implements the CryptoKeyGenerationService interface
type cryptoKeyGenerationService struct {
	cryptoKeyRepo      keys.CryptoKeyRepository
	symmetricProcessor crypto.SymmetricProcessor
	logger             logger.Logger
}

// NewCryptoKeyGenerationService creates a new cryptoKeyGenerationService instance
func NewCryptoKeyGenerationService(
	cryptoKeyRepo keys.CryptoKeyRepository,
	symmetricProcessor crypto.SymmetricProcessor,
	logger logger.Logger,
) (keys.CryptoKeyGenerationService, error) {
	return &cryptoKeyGenerationService{
		cryptoKeyRepo:      cryptoKeyRepo,
		symmetricProcessor: symmetricProcessor,
		logger:             logger,
	}, nil
}

// Generate creates a new Threefish key for a user and persists its metadata.
// Only the metadata is stored; the raw key material is returned to the caller
// exactly once.
func (s *cryptoKeyGenerationService) Generate(ctx context.Context, userID string, keySize uint32) (*keys.CryptoKeyMeta, []byte, error) {
	var keySizeInBytes int
	switch keySize {
	case 256:
		keySizeInBytes = crypto.ThreefishKeySize256
	case 512:
		keySizeInBytes = crypto.ThreefishKeySize512
	case 1024:
		keySizeInBytes = crypto.ThreefishKeySize1024
	default:
		return nil, nil, fmt.Errorf("key size %v not supported for Threefish", keySize)
	}

	keyBytes, err := s.symmetricProcessor.GenerateKey(keySizeInBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	cryptoKeyMeta := &keys.CryptoKeyMeta{
		ID:              uuid.New().String(),
		Algorithm:       crypto.AlgorithmThreefish,
		KeySize:         keySize,
		Type:            crypto.KeyTypeSymmetric,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}

	if err := s.cryptoKeyRepo.Create(ctx, cryptoKeyMeta); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Generated Threefish key with id ", cryptoKeyMeta.ID)
	return cryptoKeyMeta, keyBytes, nil
}

// cryptoKeyMetadataService implements the CryptoKeyMetadataService interface to manage cryptographic key metadata.
type cryptoKeyMetadataService struct {
	cryptoKeyRepo keys.CryptoKeyRepository
	logger        logger.Logger
}

// NewCryptoKeyMetadataService creates a new cryptoKeyMetadataService instance
func NewCryptoKeyMetadataService(cryptoKeyRepo keys.CryptoKeyRepository, logger logger.Logger) (keys.CryptoKeyMetadataService, error) {
	return &cryptoKeyMetadataService{
		cryptoKeyRepo: cryptoKeyRepo,
		logger:        logger,
	}, nil
}

// List retrieves all cryptographic key metadata based on a query.
func (s *cryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	cryptoKeyMetas, err := s.cryptoKeyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cryptoKeyMetas, nil
}

// GetByID retrieves the metadata of a cryptographic key by its ID.
func (s *cryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes a cryptographic key's metadata by its ID.
func (s *cryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if _, err := s.GetByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to get key metadata: %w", err)
	}

	if err := s.cryptoKeyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}
