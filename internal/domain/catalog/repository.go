package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

/* ---------- TAGS ---------- */

func (r *Repository) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error
	return tags, err
}

func (r *Repository) GetTag(ctx context.Context, id int64) (*Tag, error) {
	var tag Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetTagsByIDs возвращает теги в порядке переданных id.
// Отсутствующий id — ErrTagNotFound.
func (r *Repository) GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	var tags []Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	ordered := make([]Tag, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, ErrTagNotFound
		}
		ordered = append(ordered, t)
	}
	return ordered, nil
}

func (r *Repository) CreateTag(ctx context.Context, tag *Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *Repository) UpdateTag(ctx context.Context, tag *Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *Repository) DeleteTag(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}

/* ---------- INGREDIENTS ---------- */

// ListIngredients ищет по вхождению с начала названия (prefix search).
func (r *Repository) ListIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error) {
	var ingredients []Ingredient
	query := r.db.WithContext(ctx).Order("name ASC")
	if namePrefix != "" {
		query = query.Where("LOWER(name) LIKE ?", strings.ToLower(namePrefix)+"%")
	}
	err := query.Find(&ingredients).Error
	return ingredients, err
}

func (r *Repository) GetIngredient(ctx context.Context, id int64) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.WithContext(ctx).First(&ing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// GetIngredientsByIDs возвращает ингредиенты в порядке переданных id.
func (r *Repository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	ordered := make([]Ingredient, 0, len(ids))
	for _, id := range ids {
		ing, ok := byID[id]
		if !ok {
			return nil, ErrIngredientNotFound
		}
		ordered = append(ordered, ing)
	}
	return ordered, nil
}

func (r *Repository) CreateIngredient(ctx context.Context, ing *Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *Repository) UpdateIngredient(ctx context.Context, ing *Ingredient) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *Repository) DeleteIngredient(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}
