package keys

import (
	"context"
)

// CryptoKeyGenerationService defines methods for generating cryptographic keys.
type CryptoKeyGenerationService interface {
	// Generate creates a new symmetric key of the given size for a user and
	// persists its metadata. It returns the CryptoKeyMeta together with the
	// raw key material, which is handed out exactly once and never stored.
	Generate(ctx context.Context, userID string, keySize uint32) (*CryptoKeyMeta, []byte, error)
}

// CryptoKeyMetadataService defines methods for managing cryptographic key metadata.
type CryptoKeyMetadataService interface {
	// List retrieves all cryptographic key metadata considering a query filter when set.
	// It returns a slice of CryptoKeyMeta and any error encountered during the retrieval process.
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)

	// GetByID retrieves the metadata of a cryptographic key by its unique ID.
	// It returns the CryptoKeyMeta and any error encountered during the retrieval process.
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)

	// DeleteByID deletes a cryptographic key's metadata by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, keyID string) error
}

// CryptoKeyRepository defines the interface for CryptoKey-related operations
type CryptoKeyRepository interface {
	Create(ctx context.Context, key *CryptoKeyMeta) error
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)
	UpdateByID(ctx context.Context, key *CryptoKeyMeta) error
	DeleteByID(ctx context.Context, keyID string) error
}
