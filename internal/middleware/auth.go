package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"
)

// JWTAuth требует валидный Bearer-токен.
// Кладёт user_id и is_staff в контекст запроса.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, jwt)
		if !ok {
			response.Detail(c, http.StatusUnauthorized, "Authentication credentials were not provided or invalid")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_staff", claims.IsStaff)

		c.Next()
	}
}

// OptionalJWTAuth пускает и анонимов: если токен есть и валиден —
// контекст наполняется как в JWTAuth, иначе запрос идёт дальше без user_id.
func OptionalJWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := extractClaims(c, jwt); ok {
			c.Set("user_id", claims.UserID)
			c.Set("is_staff", claims.IsStaff)
		}
		c.Next()
	}
}

func extractClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentUserID возвращает id аутентифицированного пользователя (0 для анонима).
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
