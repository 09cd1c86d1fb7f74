package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInCart       = errors.New("recipe is already in the shopping cart")
	ErrNotInCart           = errors.New("recipe is not in the shopping cart")
	ErrNonPositivePortions = errors.New("portions_to_shop must be a positive integer")
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add кладёт рецепт в корзину. Дубликат — ErrAlreadyInCart.
func (r *Repository) Add(ctx context.Context, userID, recipeID int64, portionsToShop int) error {
	if portionsToShop <= 0 {
		return ErrNonPositivePortions
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&Entry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyInCart
	}

	entry := &Entry{UserID: userID, RecipeID: recipeID, PortionsToShop: portionsToShop}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyInCart
		}
		return err
	}
	return nil
}

// UpdatePortions меняет portions_to_shop у существующей записи.
func (r *Repository) UpdatePortions(ctx context.Context, userID, recipeID int64, portionsToShop int) error {
	if portionsToShop <= 0 {
		return ErrNonPositivePortions
	}

	result := r.db.WithContext(ctx).Model(&Entry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Update("portions_to_shop", portionsToShop)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInCart
	}
	return nil
}

// Remove убирает рецепт из корзины. Если его там не было — ErrNotInCart.
func (r *Repository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInCart
	}
	return nil
}

// Portions возвращает portions_to_shop записи корзины, 0 — если записи нет.
// Используется read-представлением рецепта (recipe.CartChecker).
func (r *Repository) Portions(ctx context.Context, userID, recipeID int64) (int, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return entry.PortionsToShop, nil
}

// ListByUser отдаёт корзину в порядке добавления, с рецептами и их ингредиентами.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Recipe").
		Preload("Recipe.IngredientLinks.Ingredient").
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}
