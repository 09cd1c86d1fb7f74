package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes: чтение публичное, мутации — только персонал.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, staffOnly ...gin.HandlerFunc) {
	tags := rg.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.GET("/:id", h.GetTag)

		mutate := tags.Group("", staffOnly...)
		mutate.POST("", h.CreateTag)
		mutate.PATCH("/:id", h.UpdateTag)
		mutate.DELETE("/:id", h.DeleteTag)
	}

	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/:id", h.GetIngredient)

		mutate := ingredients.Group("", staffOnly...)
		mutate.POST("", h.CreateIngredient)
		mutate.PATCH("/:id", h.UpdateIngredient)
		mutate.DELETE("/:id", h.DeleteIngredient)
	}
}
