package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	users *user.Repository
	jwt   *jwt.Service
}

func NewHandler(users *user.Repository, jwtService *jwt.Service) *Handler {
	return &Handler{users: users, jwt: jwtService}
}

// Login выдаёт JWT по паре email/пароль.
//
// @Summary Получить токен авторизации
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Email и пароль"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string][]string
// @Failure 401 {object} map[string]string "Неверные учётные данные"
// @Router /auth/token/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := validator.Validate(req); len(fields) > 0 {
		response.FieldErrors(c, validator.ToFieldErrors(fields))
		return
	}

	u, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			response.Detail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		response.Detail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwt.GenerateToken(u.ID, u.IsStaff)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AuthToken: token})
}

// Logout ничего не инвалидирует: токены stateless, клиент просто забывает свой.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
