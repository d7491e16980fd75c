package v1

import (
	"github.com/bslater/threefish-vault/internal/domain/crypto"
	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cryptoKeyGenerationService keys.CryptoKeyGenerationService,
	cryptoKeyMetadataService keys.CryptoKeyMetadataService,
	symmetricProcessor crypto.SymmetricProcessor) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(cryptoKeyGenerationService, cryptoKeyMetadataService)
	v1.POST("/keys", keyHandler.GenerateKey)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Crypto Routes
	cryptoHandler := NewCryptoHandler(symmetricProcessor)
	v1.POST("/crypto/encrypt", cryptoHandler.Encrypt)
	v1.POST("/crypto/decrypt", cryptoHandler.Decrypt)
}
