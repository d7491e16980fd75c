package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CryptoKeyMeta represents the metadata of a symmetric cryptographic key
type CryptoKeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=Threefish"`
	KeySize         uint32    `validate:"required"`
	Type            string    `validate:"required,oneof=symmetric"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating CryptoKeyMeta struct
func (k *CryptoKeyMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
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

// CryptoKeyQuery represents the filter, sorting and pagination options for
// listing key metadata
type CryptoKeyQuery struct {
	Algorithm       string
	Type            string
	DateTimeCreated time.Time

	Limit  int `validate:"omitempty,min=1"`
	Offset int `validate:"omitempty,min=0"`

	SortBy    string `validate:"omitempty,oneof=algorithm key_size type date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCryptoKeyQuery creates a CryptoKeyQuery with default pagination values
func NewCryptoKeyQuery() *CryptoKeyQuery {
	return &CryptoKeyQuery{
		Limit:  10,
		Offset: 0,
	}
}

// Validate for validating CryptoKeyQuery struct
func (q *CryptoKeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
