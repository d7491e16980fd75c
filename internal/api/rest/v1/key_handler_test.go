//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bslater/threefish-vault/internal/domain/keys"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKeyHandler_GenerateKey_Success(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	keyMeta := &keys.CryptoKeyMeta{
		ID:              "abc-123",
		Algorithm:       "Threefish",
		KeySize:         512,
		Type:            "symmetric",
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}
	keyBytes := bytes.Repeat([]byte{0x42}, 64)

	requestBody := `{"algorithm": "Threefish", "key_size": 512}`

	mockGenerationService.
		On("Generate", mock.Anything, mock.AnythingOfType("string"), uint32(512)).
		Return(keyMeta, keyBytes, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKey(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), `"key"`)
	mockGenerationService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKey_InvalidKeySize(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	requestBody := `{"algorithm": "Threefish", "key_size": 192}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKey(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGenerationService.AssertNotCalled(t, "Generate")
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	keyMeta := &keys.CryptoKeyMeta{
		ID:              "abc-123",
		Algorithm:       "Threefish",
		KeySize:         256,
		Type:            "symmetric",
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}

	mockMetadataService.
		On("List", mock.Anything, mock.Anything).
		Return([]*keys.CryptoKeyMeta{keyMeta}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_GetMetadataByID_Success(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	keyMeta := &keys.CryptoKeyMeta{
		ID:              "abc-123",
		Algorithm:       "Threefish",
		KeySize:         1024,
		Type:            "symmetric",
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(keyMeta, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_DeleteByID_Success(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	keyID := "abc-123"

	mockMetadataService.
		On("DeleteByID", mock.Anything, keyID).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: keyID}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_ValidationError(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?sortOrder=invalid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyHandler_GetMetadataByID_Error(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.On("GetByID", mock.Anything, "abc-123").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_DeleteByID_Error(t *testing.T) {
	mockGenerationService := new(MockCryptoKeyGenerationService)
	mockMetadataService := new(MockCryptoKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.On("DeleteByID", mock.Anything, "abc-123").
		Return(errors.New("delete failed"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMetadataService.AssertExpectations(t)
}
