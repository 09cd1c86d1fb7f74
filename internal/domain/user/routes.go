package user

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", authOptional, h.List)
		users.GET("/me", authRequired, h.Me)
		users.GET("/subscriptions", authRequired, h.Subscriptions)
		users.GET("/:id", authOptional, h.GetByID)
		users.POST("/:id/subscribe", authRequired, h.Subscribe)
		users.DELETE("/:id/subscribe", authRequired, h.Unsubscribe)
	}
}
