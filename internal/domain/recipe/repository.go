package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// Filters — параметры выборки списка рецептов.
// Favorited/InCart действуют только при UserID != 0.
type Filters struct {
	AuthorID  int64
	TagSlugs  []string
	UserID    int64
	Favorited *bool
	InCart    *bool
	Limit     int
	Offset    int
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("IngredientLinks.Ingredient").
		First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List возвращает рецепты по фильтрам, новые сверху.
func (r *Repository) List(ctx context.Context, f Filters) ([]Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&Recipe{})

	if f.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		// OR-семантика: рецепт попадает в выдачу, если помечен хотя бы одним слагом.
		query = query.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)",
			f.TagSlugs,
		)
	}
	if f.UserID != 0 && f.Favorited != nil {
		sub := "SELECT recipe_id FROM favorite_recipes WHERE user_id = ?"
		if *f.Favorited {
			query = query.Where("recipes.id IN ("+sub+")", f.UserID)
		} else {
			query = query.Where("recipes.id NOT IN ("+sub+")", f.UserID)
		}
	}
	if f.UserID != 0 && f.InCart != nil {
		sub := "SELECT recipe_id FROM shopping_cart_entries WHERE user_id = ?"
		if *f.InCart {
			query = query.Where("recipes.id IN ("+sub+")", f.UserID)
		} else {
			query = query.Where("recipes.id NOT IN ("+sub+")", f.UserID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []Recipe
	query = query.
		Preload("Author").
		Preload("Tags").
		Preload("IngredientLinks.Ingredient").
		Order("recipes.pub_date DESC, recipes.id DESC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// Create пишет рецепт и его связи одной транзакцией.
func (r *Repository) Create(ctx context.Context, rec *Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := rec.Tags
		links := rec.IngredientLinks
		rec.Tags = nil
		rec.IngredientLinks = nil

		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if err := insertTagLinks(tx, rec.ID, tags); err != nil {
			return err
		}
		if err := insertIngredientLinks(tx, rec.ID, links); err != nil {
			return err
		}

		rec.Tags = tags
		rec.IngredientLinks = links
		return nil
	})
}

// Update обновляет поля рецепта; если replaceTags/replaceIngredients выставлены,
// старые связи целиком удаляются и заменяются новым набором в той же транзакции.
func (r *Repository) Update(ctx context.Context, rec *Recipe, replaceTags, replaceIngredients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Recipe{ID: rec.ID}).
			Select("name", "text", "image", "cooking_time", "portions").
			Updates(map[string]any{
				"name":         rec.Name,
				"text":         rec.Text,
				"image":        rec.Image,
				"cooking_time": rec.CookingTime,
				"portions":     rec.Portions,
			}).Error
		if err != nil {
			return err
		}

		if replaceTags {
			if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", rec.ID).Error; err != nil {
				return err
			}
			if err := insertTagLinks(tx, rec.ID, rec.Tags); err != nil {
				return err
			}
		}

		if replaceIngredients {
			if err := tx.Where("recipe_id = ?", rec.ID).Delete(&IngredientRecipe{}).Error; err != nil {
				return err
			}
			if err := insertIngredientLinks(tx, rec.ID, rec.IngredientLinks); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete удаляет рецепт вместе со всеми junction-строками.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientRecipe{}).Error; err != nil {
			return err
		}
		for _, table := range []string{"recipe_tags", "favorite_recipes", "shopping_cart_entries"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE recipe_id = ?", id).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

/* ---------- user.RecipeLister ---------- */

// BriefsByAuthor отдаёт короткие представления рецептов автора,
// limit <= 0 — без ограничения.
func (r *Repository) BriefsByAuthor(ctx context.Context, authorID int64, limit int) ([]user.RecipeBrief, error) {
	var recipes []Recipe
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	briefs := make([]user.RecipeBrief, 0, len(recipes))
	for _, rec := range recipes {
		briefs = append(briefs, user.RecipeBrief{
			ID:          rec.ID,
			Name:        rec.Name,
			Image:       rec.Image,
			CookingTime: rec.CookingTime,
		})
	}
	return briefs, nil
}

func (r *Repository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func insertTagLinks(tx *gorm.DB, recipeID int64, tags []catalog.Tag) error {
	for _, t := range tags {
		if err := tx.Exec(
			"INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", recipeID, t.ID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertIngredientLinks(tx *gorm.DB, recipeID int64, links []IngredientRecipe) error {
	for i := range links {
		links[i].RecipeID = recipeID
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}
