package recipe

import (
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// IngredientAmount — пара {id ингредиента, количество} в теле записи.
type IngredientAmount struct {
	ID     int64   `json:"id" validate:"required"`
	Amount float64 `json:"amount"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	Image       string             `json:"image" validate:"required"`
	CookingTime int                `json:"cooking_time"`
	Portions    int                `json:"portions"`
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// UpdateRecipeRequest — частичное обновление: присутствие поля = изменение.
// tags и ingredients заменяют прежние связи целиком.
type UpdateRecipeRequest struct {
	Name        *string             `json:"name"`
	Text        *string             `json:"text"`
	Image       *string             `json:"image"`
	CookingTime *int                `json:"cooking_time"`
	Portions    *int                `json:"portions"`
	Tags        *[]int64            `json:"tags"`
	Ingredients *[]IngredientAmount `json:"ingredients"`
}

// IngredientInRecipeResponse — ингредиент с количеством в read-представлении.
type IngredientInRecipeResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

// RecipeResponse — полное read-представление рецепта.
// is_in_shopping_cart — количество порций в корзине запрашивающего (0, если нет).
type RecipeResponse struct {
	ID               int64                        `json:"id"`
	Tags             []catalog.Tag                `json:"tags"`
	Author           user.UserResponse            `json:"author"`
	Ingredients      []IngredientInRecipeResponse `json:"ingredients"`
	IsFavorited      bool                         `json:"is_favorited"`
	IsInShoppingCart int                          `json:"is_in_shopping_cart"`
	Name             string                       `json:"name"`
	Image            string                       `json:"image"`
	Text             string                       `json:"text"`
	CookingTime      int                          `json:"cooking_time"`
	Portions         int                          `json:"portions"`
}

// ShortResponse — короткое представление для ответов избранного и корзины.
type ShortResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type RecipeListResponse struct {
	Count   int64            `json:"count"`
	Results []RecipeResponse `json:"results"`
}

// Flags — вычисляемые поля выдачи относительно запрашивающего.
type Flags struct {
	IsFavorited      bool
	CartPortions     int
	AuthorSubscribed bool
}

func ToRecipeResponse(rec *Recipe, flags Flags) RecipeResponse {
	ingredients := make([]IngredientInRecipeResponse, 0, len(rec.IngredientLinks))
	for _, link := range rec.IngredientLinks {
		item := IngredientInRecipeResponse{
			ID:     link.IngredientID,
			Amount: link.Amount,
		}
		if link.Ingredient != nil {
			item.Name = link.Ingredient.Name
			item.MeasurementUnit = link.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, item)
	}

	var author user.UserResponse
	if rec.Author != nil {
		author = user.ToUserResponse(rec.Author, flags.AuthorSubscribed)
	}

	tags := rec.Tags
	if tags == nil {
		tags = []catalog.Tag{}
	}

	return RecipeResponse{
		ID:               rec.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.CartPortions,
		Name:             rec.Name,
		Image:            rec.Image,
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
		Portions:         rec.Portions,
	}
}

func ToShortResponse(rec *Recipe) ShortResponse {
	return ShortResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       rec.Image,
		CookingTime: rec.CookingTime,
	}
}
