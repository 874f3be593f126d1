package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewboard/internal/domain"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// DomainError maps each domain error to a distinct, stable outward signal.
func DomainError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input", vErr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		Error(c, http.StatusConflict, "ALREADY_EXISTS", "Resource already exists")
	case errors.Is(err, domain.ErrForeignKeyViolation):
		Error(c, http.StatusBadRequest, "REFERENCE_NOT_FOUND", "Referenced entity does not exist")
	case errors.Is(err, domain.ErrDeleteConflict):
		Error(c, http.StatusConflict, "DELETE_CONFLICT", "Resource has dependent reviews")
	case errors.Is(err, domain.ErrConnectivity):
		Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Storage unavailable")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
