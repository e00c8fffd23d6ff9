package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monlivredecuisine/backend/internal/service"
)

// respondError maps service failures onto HTTP status codes. Unknown errors
// become an opaque 500 so internals never leak to callers.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAdminAlreadyExists):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrSelfDeletion),
		errors.Is(err, service.ErrSelfModification):
		status = http.StatusBadRequest
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
