package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/bslater/threefish-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest represents the request payload for generating a Threefish key
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=Threefish"`
	KeySize   uint32 `json:"key_size" validate:"omitempty,keySizeValidation"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CryptoKeyMetaResponse represents the metadata of a cryptographic key returned by the API
type CryptoKeyMetaResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// GenerateKeyResponse carries the key metadata together with the raw key
// material. The key is base64 encoded and handed out exactly once; it is
// never persisted server-side.
type GenerateKeyResponse struct {
	CryptoKeyMetaResponse
	Key string `json:"key"`
}

// EncryptRequest represents the request payload for one-shot encryption.
// Key and data are base64 encoded.
type EncryptRequest struct {
	Key  string `json:"key" validate:"required,base64"`
	Data string `json:"data" validate:"omitempty,base64"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// EncryptResponse carries the base64 encoded ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest represents the request payload for one-shot decryption.
// Key and ciphertext are base64 encoded.
type DecryptRequest struct {
	Key        string `json:"key" validate:"required,base64"`
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptResponse carries the base64 encoded recovered plaintext
type DecryptResponse struct {
	Data string `json:"data"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
