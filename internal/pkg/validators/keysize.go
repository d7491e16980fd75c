package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size in bits based on the algorithm type.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "Threefish":
		return keySize == 256 || keySize == 512 || keySize == 1024
	default:
		return false
	}
}
