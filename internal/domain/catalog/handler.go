package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

/* ---------- TAG HANDLERS ---------- */

// ListTags отдаёт все теги. Без пагинации.
//
// @Summary Список тегов
// @Tags Catalog
// @Produce json
// @Success 200 {array} Tag
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.repo.ListTags(c.Request.Context())
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *Handler) GetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tag, err := h.repo.GetTag(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTagNotFound) {
			response.Detail(c, http.StatusNotFound, "Tag not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to get tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) CreateTag(c *gin.Context) {
	req, ok := bindTagRequest(c)
	if !ok {
		return
	}

	tag := &Tag{Name: req.Name, Color: req.Color, Slug: req.Slug}
	if err := h.repo.CreateTag(c.Request.Context(), tag); err != nil {
		response.Detail(c, http.StatusBadRequest, "Failed to create tag: name and slug must be unique")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindTagRequest(c)
	if !ok {
		return
	}

	tag, err := h.repo.GetTag(c.Request.Context(), id)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Tag not found")
		return
	}

	tag.Name = req.Name
	tag.Color = req.Color
	tag.Slug = req.Slug
	if err := h.repo.UpdateTag(c.Request.Context(), tag); err != nil {
		response.Detail(c, http.StatusBadRequest, "Failed to update tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteTag(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTagNotFound) {
			response.Detail(c, http.StatusNotFound, "Tag not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- INGREDIENT HANDLERS ---------- */

// ListIngredients отдаёт ингредиенты, опционально фильтруя по началу названия.
// Без пагинации.
//
// @Summary Список ингредиентов
// @Tags Catalog
// @Produce json
// @Param name query string false "Поиск по началу названия"
// @Success 200 {array} Ingredient
// @Router /ingredients [get]
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.repo.ListIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list ingredients")
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ing, err := h.repo.GetIngredient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrIngredientNotFound) {
			response.Detail(c, http.StatusNotFound, "Ingredient not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to get ingredient")
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (h *Handler) CreateIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return
	}

	ing := &Ingredient{Name: req.Name, MeasurementUnit: req.MeasurementUnit}
	if err := h.repo.CreateIngredient(c.Request.Context(), ing); err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to create ingredient")
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func (h *Handler) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return
	}

	ing, err := h.repo.GetIngredient(c.Request.Context(), id)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	ing.Name = req.Name
	ing.MeasurementUnit = req.MeasurementUnit
	if err := h.repo.UpdateIngredient(c.Request.Context(), ing); err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to update ingredient")
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (h *Handler) DeleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteIngredient(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrIngredientNotFound) {
			response.Detail(c, http.StatusNotFound, "Ingredient not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to delete ingredient")
		return
	}
	c.Status(http.StatusNoContent)
}

func bindTagRequest(c *gin.Context) (TagRequest, bool) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return req, false
	}
	if fields := validator.Validate(req); fields != nil {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return req, false
	}
	return req, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
