package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	repo    *Repository
	recipes *recipe.Repository
}

func NewHandler(repo *Repository, recipes *recipe.Repository) *Handler {
	return &Handler{repo: repo, recipes: recipes}
}

// Add добавляет рецепт в избранное текущего пользователя.
//
// @Summary Добавить рецепт в избранное
// @Tags Favorite
// @Security BearerAuth
// @Param id path int64 true "ID рецепта"
// @Success 201 {object} recipe.ShortResponse
// @Failure 400 {object} map[string]string "Рецепт уже в избранном"
// @Failure 404 {object} map[string]string "Рецепт не найден"
// @Router /recipes/{id}/favorite [post]
func (h *Handler) Add(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	err := h.repo.Add(c.Request.Context(), middleware.CurrentUserID(c), rec.ID)
	if err != nil {
		if errors.Is(err, ErrAlreadyFavorited) {
			response.Detail(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, recipe.ToShortResponse(rec))
}

// Remove убирает рецепт из избранного текущего пользователя.
func (h *Handler) Remove(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	err := h.repo.Remove(c.Request.Context(), middleware.CurrentUserID(c), rec.ID)
	if err != nil {
		if errors.Is(err, ErrNotFavorited) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) loadRecipe(c *gin.Context) (*recipe.Recipe, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid recipe id")
		return nil, false
	}

	rec, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "Recipe not found")
			return nil, false
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load recipe")
		return nil, false
	}
	return rec, true
}
