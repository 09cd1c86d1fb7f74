package cart

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	recipes := rg.Group("/recipes", authRequired)
	{
		recipes.GET("/download_shopping_cart", h.Download)
		recipes.POST("/:id/shopping_cart", h.Add)
		recipes.PATCH("/:id/shopping_cart", h.UpdatePortions)
		recipes.DELETE("/:id/shopping_cart", h.Remove)
	}
}
