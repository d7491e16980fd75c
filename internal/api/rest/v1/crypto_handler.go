package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/gin-gonic/gin"
)

// CryptoHandler defines the interface for one-shot encryption operations
type CryptoHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// cryptoHandler struct holds the symmetric processor
type cryptoHandler struct {
	symmetricProcessor crypto.SymmetricProcessor
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(symmetricProcessor crypto.SymmetricProcessor) CryptoHandler {
	return &cryptoHandler{
		symmetricProcessor: symmetricProcessor,
	}
}

// Encrypt handles the POST request to encrypt data with a Threefish key
// @Summary Encrypt data with a Threefish key
// @Description Encrypt the provided base64 data with the provided base64 key. A fresh tweak and IV are generated per message.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption input"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/encrypt [post]
func (handler *cryptoHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid encryption request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	key, err := base64.StdEncoding.DecodeString(request.Key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid base64 key: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	data, err := base64.StdEncoding.DecodeString(request.Data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid base64 data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ciphertext, err := handler.symmetricProcessor.Encrypt(data, key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("encryption failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})
}

// Decrypt handles the POST request to decrypt data with a Threefish key
// @Summary Decrypt data with a Threefish key
// @Description Decrypt the provided base64 ciphertext with the provided base64 key.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption input"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/decrypt [post]
func (handler *cryptoHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid decryption request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	key, err := base64.StdEncoding.DecodeString(request.Key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid base64 key: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid base64 ciphertext: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	data, err := handler.symmetricProcessor.Decrypt(ciphertext, key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("decryption failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		Data: base64.StdEncoding.EncodeToString(data),
	})
}
