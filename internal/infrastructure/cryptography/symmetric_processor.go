package cryptography

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/bslater/threefish-vault/internal/pkg/logger"
)

// symmetricProcessor struct that implements the SymmetricProcessor interface
type symmetricProcessor struct {
	logger  logger.Logger
	mode    CipherMode
	padding PaddingScheme
}

// NewSymmetricProcessor creates and returns a new instance of symmetricProcessor
// using CBC chaining with PKCS7 padding.
func NewSymmetricProcessor(logger logger.Logger) (cryptoDomain.SymmetricProcessor, error) {
	return &symmetricProcessor{
		logger:  logger,
		mode:    ModeCBC,
		padding: PaddingPKCS7,
	}, nil
}

// GenerateKey generates a random Threefish key of the specified size.
// Supported sizes: 32, 64 or 128 bytes (Threefish-256/-512/-1024).
func (s *symmetricProcessor) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case cryptoDomain.ThreefishKeySize256, cryptoDomain.ThreefishKeySize512, cryptoDomain.ThreefishKeySize1024:
	default:
		return nil, fmt.Errorf("invalid Threefish key size %d: must be 32, 64 or 128 bytes", keySize)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate Threefish key: %w", err)
	}

	s.logger.Info("Generated Threefish key")
	return key, nil
}

// Encrypt encrypts plaintext with Threefish. A fresh random tweak and IV are
// generated per message and prepended to the ciphertext:
//
//	tweak (16 bytes) || iv (block size bytes) || ciphertext
func (s *symmetricProcessor) Encrypt(data, key []byte) ([]byte, error) {
	tweak := make([]byte, cryptoDomain.ThreefishTweakSize)
	if _, err := rand.Read(tweak); err != nil {
		return nil, fmt.Errorf("failed to generate tweak: %w", err)
	}

	cipher, err := NewThreefish(key, tweak)
	if err != nil {
		return nil, fmt.Errorf("failed to create Threefish cipher: %w", err)
	}
	defer func() {
		if err := cipher.Close(); err != nil {
			s.logger.Warn("failed to dispose Threefish cipher ", err)
		}
	}()

	iv := make([]byte, cipher.BlockSize())
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	stream, err := NewSymmetricStream(cipher, s.mode, s.padding, iv, DirectionEncrypt)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryption stream: %w", err)
	}

	cipherText, err := stream.Final(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	out := make([]byte, 0, len(tweak)+len(iv)+len(cipherText))
	out = append(out, tweak...)
	out = append(out, iv...)
	out = append(out, cipherText...)

	s.logger.Info("Threefish encryption succeeded")
	return out, nil
}

// Decrypt decrypts ciphertext produced by Encrypt with the provided key.
func (s *symmetricProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) < cryptoDomain.ThreefishTweakSize {
		return nil, fmt.Errorf("ciphertext too short: missing tweak")
	}
	tweak := ciphertext[:cryptoDomain.ThreefishTweakSize]
	rest := ciphertext[cryptoDomain.ThreefishTweakSize:]

	cipher, err := NewThreefish(key, tweak)
	if err != nil {
		return nil, fmt.Errorf("failed to create Threefish cipher: %w", err)
	}
	defer func() {
		if err := cipher.Close(); err != nil {
			s.logger.Warn("failed to dispose Threefish cipher ", err)
		}
	}()

	blockSize := cipher.BlockSize()
	if len(rest) < blockSize {
		return nil, fmt.Errorf("ciphertext too short: missing IV")
	}
	iv := rest[:blockSize]
	body := rest[blockSize:]

	stream, err := NewSymmetricStream(cipher, s.mode, s.padding, iv, DirectionDecrypt)
	if err != nil {
		return nil, fmt.Errorf("failed to create decryption stream: %w", err)
	}

	plainText, err := stream.Final(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	s.logger.Info("Threefish decryption succeeded")
	return plainText, nil
}
