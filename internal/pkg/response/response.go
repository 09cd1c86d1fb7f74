package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail отправляет ошибку в формате {"detail": "..."}.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// FieldErrors отправляет 400 с пофилдовыми сообщениями валидации:
// {"cooking_time": ["must be positive"], ...}
func FieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// FieldError — частный случай FieldErrors с одним полем и одним сообщением.
func FieldError(c *gin.Context, field, message string) {
	FieldErrors(c, map[string][]string{field: {message}})
}
