package favorite

import (
	"time"
)

// FavoriteRecipe представляет связь пользователя с избранным рецептом.
// Пара user-recipe должна быть уникальной.
type FavoriteRecipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_fav"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_fav"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (FavoriteRecipe) TableName() string { return "favorite_recipes" }
