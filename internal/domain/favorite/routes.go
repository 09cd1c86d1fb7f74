package favorite

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	recipes := rg.Group("/recipes", authRequired)
	{
		recipes.POST("/:id/favorite", h.Add)
		recipes.DELETE("/:id/favorite", h.Remove)
	}
}
