package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Service status codes carried by every response envelope.
const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// serviceResponse wraps an operation payload with the service status code
// and a human-readable state message. Every endpoint speaks this envelope
// regardless of outcome.
func serviceResponse(code, state string, payload gin.H) gin.H {
	obj := gin.H{
		"code":  code,
		"state": state,
	}
	for key, value := range payload {
		obj[key] = value
	}
	return obj
}

// respondOK sends a 200 envelope with the given state and payload.
func respondOK(c *gin.Context, state string, payload gin.H) {
	c.JSON(http.StatusOK, serviceResponse(StatusOK, state, payload))
}

// respondValidationError sends a 400 Error envelope. Nothing was mutated.
func respondValidationError(c *gin.Context, state string) {
	c.JSON(http.StatusBadRequest, serviceResponse(StatusError, state, nil))
}

// respondNotFound sends a 404 Error envelope.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, serviceResponse(StatusError, resource+" not found", nil))
}

// respondStorageError logs the failure and sends a 500 Error envelope
// carrying the underlying message. The transaction that failed has been
// rolled back by the storage layer.
func respondStorageError(c *gin.Context, err error, context string) {
	log.Printf("Storage error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, serviceResponse(StatusError, err.Error(), nil))
}

// respondExtractionError sends a 422 Error envelope for a document that
// could not be converted to text.
func respondExtractionError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, serviceResponse(StatusError, err.Error(), nil))
}
