package user

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8"`
}

// UserResponse — профиль пользователя в API-ответах.
// is_subscribed считается относительно того, кто спрашивает.
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// SubscribedAuthorResponse — автор в выдаче /users/subscriptions:
// профиль плюс его рецепты (возможно обрезанные recipes_limit) и полный счётчик.
type SubscribedAuthorResponse struct {
	UserResponse
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type UserListResponse struct {
	Count   int64          `json:"count"`
	Results []UserResponse `json:"results"`
}

type SubscriptionListResponse struct {
	Count   int64                      `json:"count"`
	Results []SubscribedAuthorResponse `json:"results"`
}

func ToUserResponse(u *User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
