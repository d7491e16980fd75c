//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/stretchr/testify/mock"
)

// MockCryptoKeyGenerationService is a mock implementation of CryptoKeyGenerationService
type MockCryptoKeyGenerationService struct {
	mock.Mock
}

func (m *MockCryptoKeyGenerationService) Generate(ctx context.Context, userID string, keySize uint32) (*keys.CryptoKeyMeta, []byte, error) {
	args := m.Called(ctx, userID, keySize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Get(1).([]byte), args.Error(2)
}

// MockCryptoKeyMetadataService is a mock implementation of CryptoKeyMetadataService
type MockCryptoKeyMetadataService struct {
	mock.Mock
}

func (m *MockCryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockSymmetricProcessor is a mock implementation of SymmetricProcessor
type MockSymmetricProcessor struct {
	mock.Mock
}

func (m *MockSymmetricProcessor) GenerateKey(keySize int) ([]byte, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSymmetricProcessor) Encrypt(data, key []byte) ([]byte, error) {
	args := m.Called(data, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSymmetricProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	args := m.Called(ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
