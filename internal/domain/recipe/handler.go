package recipe

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service   *Service
	repo      *Repository
	favorites FavoriteChecker
	cart      CartChecker
	subs      SubscriptionChecker
}

func NewHandler(service *Service, repo *Repository, favorites FavoriteChecker, cart CartChecker, subs SubscriptionChecker) *Handler {
	return &Handler{
		service:   service,
		repo:      repo,
		favorites: favorites,
		cart:      cart,
		subs:      subs,
	}
}

// List отдаёт рецепты с фильтрами и пагинацией, новые сверху.
//
// @Summary Список рецептов
// @Tags Recipes
// @Produce json
// @Param author query int64 false "ID автора"
// @Param tags query string false "Слаги тегов (повтор параметра или CSV, OR-семантика)"
// @Param is_favorited query string false "1/0 — только для аутентифицированных"
// @Param is_in_shopping_cart query string false "1/0 — только для аутентифицированных"
// @Param page query int false "Номер страницы"
// @Param limit query int false "Элементов на страницу"
// @Success 200 {object} RecipeListResponse
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	f := h.parseFilters(c)

	recipes, total, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list recipes")
		return
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := h.buildResponse(c, &recipes[i])
		if err != nil {
			response.Detail(c, http.StatusInternalServerError, "Failed to list recipes")
			return
		}
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, RecipeListResponse{Count: total, Results: results})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "Recipe not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to get recipe")
		return
	}

	resp, err := h.buildResponse(c, rec)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to get recipe")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create создаёт рецепт. Картинка приходит как base64 data URI,
// ответ — по read-представлению.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return
	}

	rec, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.buildResponse(c, rec)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rec, err := h.service.Update(
		c.Request.Context(),
		middleware.CurrentUserID(c), c.GetBool("is_staff"),
		id, req,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.buildResponse(c, rec)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.GetBool("is_staff"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) parseFilters(c *gin.Context) Filters {
	f := Filters{UserID: middleware.CurrentUserID(c)}
	f.Limit, f.Offset = user.Pagination(c)

	if raw := c.Query("author"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.AuthorID = id
		}
	}

	// tags поддерживает и повтор параметра, и CSV: ?tags=a,b&tags=c
	for _, raw := range c.QueryArray("tags") {
		for _, slug := range strings.Split(raw, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				f.TagSlugs = append(f.TagSlugs, slug)
			}
		}
	}

	// Вычисляемые фильтры действуют только для аутентифицированных.
	if f.UserID != 0 {
		f.Favorited = boolFilter(c.Query("is_favorited"))
		f.InCart = boolFilter(c.Query("is_in_shopping_cart"))
	}

	return f
}

func boolFilter(raw string) *bool {
	switch raw {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	}
	return nil
}

// buildResponse вычисляет is_favorited / is_in_shopping_cart / is_subscribed
// относительно текущего пользователя. Для анонима всё false/0.
func (h *Handler) buildResponse(c *gin.Context, rec *Recipe) (RecipeResponse, error) {
	var flags Flags

	userID := middleware.CurrentUserID(c)
	if userID != 0 {
		var err error
		flags.IsFavorited, err = h.favorites.Exists(c.Request.Context(), userID, rec.ID)
		if err != nil {
			return RecipeResponse{}, err
		}
		flags.CartPortions, err = h.cart.Portions(c.Request.Context(), userID, rec.ID)
		if err != nil {
			return RecipeResponse{}, err
		}
		flags.AuthorSubscribed, err = h.subs.IsSubscribed(c.Request.Context(), userID, rec.AuthorID)
		if err != nil {
			return RecipeResponse{}, err
		}
	}

	return ToRecipeResponse(rec, flags), nil
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Detail(c, http.StatusNotFound, "Recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Detail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNonPositiveCookingTime):
		response.FieldError(c, "cooking_time", err.Error())
	case errors.Is(err, ErrNonPositivePortions):
		response.FieldError(c, "portions", err.Error())
	case errors.Is(err, ErrDuplicateTag), errors.Is(err, ErrNoTags), errors.Is(err, catalog.ErrTagNotFound):
		response.FieldError(c, "tags", err.Error())
	case errors.Is(err, ErrDuplicateIngredient),
		errors.Is(err, ErrNonPositiveAmount),
		errors.Is(err, ErrNoIngredients),
		errors.Is(err, catalog.ErrIngredientNotFound):
		response.FieldError(c, "ingredients", err.Error())
	case errors.Is(err, ErrInvalidImage):
		response.FieldError(c, "image", err.Error())
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
