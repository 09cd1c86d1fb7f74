package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

// StaffOnly пропускает только персонал (is_staff в токене).
// Используется на мутациях тегов и ингредиентов — у них нет автора,
// поэтому владелец-автор тут не применим.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaff, exists := c.Get("is_staff")
		if !exists {
			response.Detail(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if staff, ok := isStaff.(bool); !ok || !staff {
			response.Detail(c, http.StatusForbidden, "Access denied: staff only")
			c.Abort()
			return
		}

		c.Next()
	}
}
