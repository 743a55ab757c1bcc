package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/auth"
)

// StatusOf maps an error kind to its HTTP status.
func StatusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuthorization:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {error} or, for server failures, {error, details}.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	status := StatusOf(ae.Kind)
	if status >= http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": ae.Message, "details": ae.Details()})
		return
	}
	c.JSON(status, gin.H{"error": ae.Message})
}

// BadBody reports a request body that could not be decoded.
func BadBody(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// Credential returns the bearer token of the request, empty when absent.
func Credential(c *gin.Context) string {
	return auth.BearerToken(c.GetHeader("Authorization"))
}
