package recipe

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", authOptional, h.List)
		recipes.POST("", authRequired, h.Create)
		recipes.GET("/:id", authOptional, h.Get)
		recipes.PATCH("/:id", authRequired, h.Update)
		recipes.DELETE("/:id", authRequired, h.Delete)
	}
}
