package recipe

import (
	"context"
	"fmt"

	"foodgram/internal/domain/catalog"
)

// Service держит всю валидацию записи рецептов и оркестрацию связей.
type Service struct {
	repo        *Repository
	tags        TagSource
	ingredients IngredientSource
	images      ImageStore
}

func NewService(repo *Repository, tags TagSource, ingredients IngredientSource, images ImageStore) *Service {
	return &Service{repo: repo, tags: tags, ingredients: ingredients, images: images}
}

func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (*Recipe, error) {
	if err := validateWrite(req.CookingTime, req.Portions, req.Tags, req.Ingredients); err != nil {
		return nil, err
	}

	tags, err := s.tags.GetTagsByIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	links, err := s.buildIngredientLinks(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.images.SaveDataURI(req.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	rec := &Recipe{
		Name:            req.Name,
		AuthorID:        authorID,
		Text:            req.Text,
		Image:           imageURL,
		CookingTime:     req.CookingTime,
		Portions:        req.Portions,
		Tags:            tags,
		IngredientLinks: links,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	// Перечитываем с preload — ответ строится по read-представлению.
	return s.repo.GetByID(ctx, rec.ID)
}

// Update — частичное обновление. Поля tags и ingredients, если присутствуют,
// полностью заменяют прежние связи (delete + insert в одной транзакции).
func (s *Service) Update(ctx context.Context, userID int64, isStaff bool, id int64, req UpdateRecipeRequest) (*Recipe, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.AuthorID != userID && !isStaff {
		return nil, ErrNotAuthor
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Text != nil {
		rec.Text = *req.Text
	}
	if req.CookingTime != nil {
		rec.CookingTime = *req.CookingTime
	}
	if req.Portions != nil {
		rec.Portions = *req.Portions
	}

	tagIDs := tagIDsOf(rec.Tags)
	if req.Tags != nil {
		tagIDs = *req.Tags
	}
	ingredients := ingredientAmountsOf(rec.IngredientLinks)
	if req.Ingredients != nil {
		ingredients = *req.Ingredients
	}

	if err := validateWrite(rec.CookingTime, rec.Portions, tagIDs, ingredients); err != nil {
		return nil, err
	}

	replaceTags := req.Tags != nil
	if replaceTags {
		rec.Tags, err = s.tags.GetTagsByIDs(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
	}

	replaceIngredients := req.Ingredients != nil
	if replaceIngredients {
		rec.IngredientLinks, err = s.buildIngredientLinks(ctx, *req.Ingredients)
		if err != nil {
			return nil, err
		}
	}

	if req.Image != nil {
		rec.Image, err = s.images.SaveDataURI(*req.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}

	if err := s.repo.Update(ctx, rec, replaceTags, replaceIngredients); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rec.ID)
}

func (s *Service) Delete(ctx context.Context, userID int64, isStaff bool, id int64) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.AuthorID != userID && !isStaff {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) buildIngredientLinks(ctx context.Context, amounts []IngredientAmount) ([]IngredientRecipe, error) {
	ids := make([]int64, 0, len(amounts))
	for _, a := range amounts {
		ids = append(ids, a.ID)
	}
	ingredients, err := s.ingredients.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	links := make([]IngredientRecipe, 0, len(amounts))
	for i, a := range amounts {
		ing := ingredients[i]
		links = append(links, IngredientRecipe{
			IngredientID: ing.ID,
			Amount:       a.Amount,
			Ingredient:   &ing,
		})
	}
	return links, nil
}

// validateWrite — все доменные правила записи рецепта.
func validateWrite(cookingTime, portions int, tagIDs []int64, ingredients []IngredientAmount) error {
	if cookingTime <= 0 {
		return ErrNonPositiveCookingTime
	}
	if portions <= 0 {
		return ErrNonPositivePortions
	}
	if len(tagIDs) == 0 {
		return ErrNoTags
	}
	if len(ingredients) == 0 {
		return ErrNoIngredients
	}

	seenTags := make(map[int64]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seenTags[id] {
			return ErrDuplicateTag
		}
		seenTags[id] = true
	}

	seenIngredients := make(map[int64]bool, len(ingredients))
	for _, ing := range ingredients {
		if seenIngredients[ing.ID] {
			return ErrDuplicateIngredient
		}
		seenIngredients[ing.ID] = true
		if ing.Amount <= 0 {
			return ErrNonPositiveAmount
		}
	}

	return nil
}

func tagIDsOf(tags []catalog.Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func ingredientAmountsOf(links []IngredientRecipe) []IngredientAmount {
	amounts := make([]IngredientAmount, 0, len(links))
	for _, l := range links {
		amounts = append(amounts, IngredientAmount{ID: l.IngredientID, Amount: l.Amount})
	}
	return amounts
}
