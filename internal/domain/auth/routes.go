package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	tokens := rg.Group("/auth/token")
	{
		tokens.POST("/login", h.Login)
		tokens.POST("/logout", authRequired, h.Logout)
	}
}
