package cart

import (
	"time"

	"foodgram/internal/domain/recipe"
)

// Entry — рецепт в продуктовой корзине пользователя.
// Пара user-recipe уникальна; portions_to_shop — на сколько порций закупаемся
// (по умолчанию — количество порций самого рецепта).
type Entry struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	UserID         int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_cart"`
	RecipeID       int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_user_recipe_cart"`
	PortionsToShop int       `json:"portions_to_shop" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`

	Recipe *recipe.Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Entry) TableName() string { return "shopping_cart_entries" }
