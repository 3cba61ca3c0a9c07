package http

import (
	"errors"
	"net/http"

	"snapblog/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps an error onto its HTTP status with a {message}
// body. Errors outside the taxonomy become an opaque 500 so internals
// never leak.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"message": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
