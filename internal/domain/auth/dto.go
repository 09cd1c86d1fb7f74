package auth

// LoginRequest — учётные данные для получения токена.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse — ответ успешного логина.
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}
