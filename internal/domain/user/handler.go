package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service *Service
	repo    *Repository
}

func NewHandler(service *Service, repo *Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

// Register регистрирует нового пользователя.
//
// @Summary Регистрация пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Данные нового пользователя"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string][]string "Ошибки валидации"
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.FieldError(c, "email", err.Error())
		case errors.Is(err, ErrUsernameTaken):
			response.FieldError(c, "username", err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, ToUserResponse(u, false))
}

// List возвращает список пользователей с пагинацией.
func (h *Handler) List(c *gin.Context) {
	limit, offset := Pagination(c)

	users, total, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	requesterID := middleware.CurrentUserID(c)
	results := make([]UserResponse, 0, len(users))
	for _, u := range users {
		subscribed, err := h.repo.IsSubscribed(c.Request.Context(), requesterID, u.ID)
		if err != nil {
			response.Detail(c, http.StatusInternalServerError, "Failed to list users")
			return
		}
		results = append(results, ToUserResponse(&u, subscribed))
	}

	c.JSON(http.StatusOK, UserListResponse{Count: total, Results: results})
}

// Me возвращает профиль текущего пользователя.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	u, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, ToUserResponse(u, false))
}

// GetByID возвращает профиль пользователя по id.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Detail(c, http.StatusNotFound, "User not found")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Subscribe подписывает текущего пользователя на автора.
//
// @Summary Подписаться на автора
// @Tags Users
// @Security BearerAuth
// @Param id path int64 true "ID автора"
// @Success 201 {object} SubscribedAuthorResponse
// @Failure 400 {object} map[string]string "Подписка на себя или дубликат"
// @Failure 404 {object} map[string]string "Автор не найден"
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}
	userID := middleware.CurrentUserID(c)

	author, err := h.service.Subscribe(c.Request.Context(), userID, authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Detail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrSelfSubscribe), errors.Is(err, ErrAlreadySubscribed):
			response.Detail(c, http.StatusBadRequest, err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Failed to subscribe")
		}
		return
	}

	briefs, err := h.service.recipes.BriefsByAuthor(c.Request.Context(), author.ID, 0)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	count, err := h.service.recipes.CountByAuthor(c.Request.Context(), author.ID)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	c.JSON(http.StatusCreated, SubscribedAuthorResponse{
		UserResponse: ToUserResponse(author, true),
		Recipes:      briefs,
		RecipesCount: count,
	})
}

// Unsubscribe отписывает текущего пользователя от автора.
func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}

	err := h.service.Unsubscribe(c.Request.Context(), middleware.CurrentUserID(c), authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Detail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrNotSubscribed):
			response.Detail(c, http.StatusNotFound, err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Failed to unsubscribe")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscriptions отдаёт авторов, на которых подписан текущий пользователь.
// recipes_limit обрезает список рецептов каждого автора.
func (h *Handler) Subscriptions(c *gin.Context) {
	limit, offset := Pagination(c)

	recipesLimit := 0
	if raw := c.Query("recipes_limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			recipesLimit = v
		}
	}

	results, total, err := h.service.Subscriptions(
		c.Request.Context(), middleware.CurrentUserID(c), limit, offset, recipesLimit,
	)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to list subscriptions")
		return
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{Count: total, Results: results})
}

// Pagination парсит page/limit. Общая для списковых выдач.
func Pagination(c *gin.Context) (limit, offset int) {
	limit = 10
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	return limit, (page - 1) * limit
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
