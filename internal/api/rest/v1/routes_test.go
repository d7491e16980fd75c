//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockCryptoKeyGenerationService := new(MockCryptoKeyGenerationService)
	mockCryptoKeyMetadataService := new(MockCryptoKeyMetadataService)
	mockSymmetricProcessor := new(MockSymmetricProcessor)

	r := gin.Default()

	// Setup mocks to return nil
	mockCryptoKeyGenerationService.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, nil)
	mockCryptoKeyMetadataService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockCryptoKeyMetadataService.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
	mockCryptoKeyMetadataService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockSymmetricProcessor.On("Encrypt", mock.Anything, mock.Anything).Return(nil, nil)
	mockSymmetricProcessor.On("Decrypt", mock.Anything, mock.Anything).Return(nil, nil)

	SetupRoutes(r, mockCryptoKeyGenerationService, mockCryptoKeyMetadataService, mockSymmetricProcessor)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/tfv/keys"},
		{"GET", "/api/v1/tfv/keys"},
		{"POST", "/api/v1/tfv/crypto/encrypt"},
		{"POST", "/api/v1/tfv/crypto/decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
