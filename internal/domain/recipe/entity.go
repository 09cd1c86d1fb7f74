package recipe

import (
	"time"

	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// Recipe — рецепт.
// С Tag связан через many-to-many (recipe_tags), с Ingredient — через
// IngredientRecipe с полем amount. Выдача всегда по убыванию даты публикации.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	Portions    int       `json:"portions" gorm:"not null"`
	PubDate     time.Time `json:"pub_date" gorm:"autoCreateTime;index"`

	Author          *user.User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags            []catalog.Tag      `json:"tags,omitempty" gorm:"many2many:recipe_tags"`
	IngredientLinks []IngredientRecipe `json:"ingredient_links,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

// IngredientRecipe — связь рецепта и ингредиента с количеством.
// Пара recipe-ingredient уникальна.
type IngredientRecipe struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	RecipeID     int64   `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64   `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       float64 `json:"amount" gorm:"not null"`

	Ingredient *catalog.Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
}

func (IngredientRecipe) TableName() string { return "ingredient_recipes" }
