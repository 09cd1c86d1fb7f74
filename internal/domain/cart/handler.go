package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	repo    *Repository
	service *Service
	recipes *recipe.Repository
	users   *user.Repository
}

func NewHandler(repo *Repository, service *Service, recipes *recipe.Repository, users *user.Repository) *Handler {
	return &Handler{repo: repo, service: service, recipes: recipes, users: users}
}

// PortionsRequest — опциональное тело добавления и обязательное тело PATCH.
type PortionsRequest struct {
	PortionsToShop int `json:"portions_to_shop"`
}

// Add кладёт рецепт в корзину текущего пользователя.
// Если portions_to_shop не передан, берётся количество порций рецепта.
//
// @Summary Добавить рецепт в корзину
// @Tags ShoppingCart
// @Security BearerAuth
// @Param id path int64 true "ID рецепта"
// @Param request body PortionsRequest false "Количество порций для закупки"
// @Success 201 {object} recipe.ShortResponse
// @Failure 400 {object} map[string]string "Рецепт уже в корзине"
// @Failure 404 {object} map[string]string "Рецепт не найден"
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) Add(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	portions := rec.Portions
	var req PortionsRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.PortionsToShop != 0 {
		portions = req.PortionsToShop
	}

	err := h.repo.Add(c.Request.Context(), middleware.CurrentUserID(c), rec.ID, portions)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInCart):
			response.Detail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNonPositivePortions):
			response.FieldError(c, "portions_to_shop", err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Failed to add to shopping cart")
		}
		return
	}

	c.JSON(http.StatusCreated, recipe.ToShortResponse(rec))
}

// UpdatePortions меняет portions_to_shop у записи корзины.
func (h *Handler) UpdatePortions(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	var req PortionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.repo.UpdatePortions(c.Request.Context(), middleware.CurrentUserID(c), rec.ID, req.PortionsToShop)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotInCart):
			response.Detail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNonPositivePortions):
			response.FieldError(c, "portions_to_shop", err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Failed to update shopping cart")
		}
		return
	}

	c.JSON(http.StatusOK, recipe.ToShortResponse(rec))
}

// Remove убирает рецепт из корзины.
func (h *Handler) Remove(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	err := h.repo.Remove(c.Request.Context(), middleware.CurrentUserID(c), rec.ID)
	if err != nil {
		if errors.Is(err, ErrNotInCart) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to remove from shopping cart")
		return
	}

	c.Status(http.StatusNoContent)
}

// Download отдаёт агрегированный список покупок текстовым вложением
// {username}_ingredients_list.txt.
//
// @Summary Скачать список покупок
// @Tags ShoppingCart
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string "Текстовый список покупок"
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to build shopping list")
		return
	}

	doc, err := h.service.BuildShoppingList(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to build shopping list")
		return
	}

	filename := u.Username + "_ingredients_list.txt"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/plain; charset=utf8", []byte(doc))
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
