package recipe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// fakeImageStore подменяет диск: отдаёт стабильный URL без записи файлов.
type fakeImageStore struct{}

func (fakeImageStore) SaveDataURI(string) (string, error) {
	return "/static/uploads/fake.png", nil
}

type fixture struct {
	db      *gorm.DB
	service *recipe.Service
	repo    *recipe.Repository
	author  *user.User
	tag     *catalog.Tag
	salt    *catalog.Ingredient
	flour   *catalog.Ingredient
}

func setup(t *testing.T, name string) *fixture {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	author := &user.User{
		Email:        "author@test.com",
		Username:     "author",
		FirstName:    "Author",
		LastName:     "Test",
		PasswordHash: "$2a$10$dummy",
	}
	require.NoError(t, db.Create(author).Error)

	tag := &catalog.Tag{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}
	require.NoError(t, db.Create(tag).Error)

	salt := &catalog.Ingredient{Name: "Соль", MeasurementUnit: "г"}
	require.NoError(t, db.Create(salt).Error)
	flour := &catalog.Ingredient{Name: "Мука", MeasurementUnit: "г"}
	require.NoError(t, db.Create(flour).Error)

	repo := recipe.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	service := recipe.NewService(repo, catalogRepo, catalogRepo, fakeImageStore{})

	return &fixture{
		db:      db,
		service: service,
		repo:    repo,
		author:  author,
		tag:     tag,
		salt:    salt,
		flour:   flour,
	}
}

func (f *fixture) validRequest() recipe.CreateRecipeRequest {
	return recipe.CreateRecipeRequest{
		Name:        "Хлеб",
		Text:        "Замесить и выпечь.",
		Image:       "data:image/png;base64,aGVsbG8=",
		CookingTime: 90,
		Portions:    4,
		Tags:        []int64{f.tag.ID},
		Ingredients: []recipe.IngredientAmount{
			{ID: f.salt.ID, Amount: 5},
			{ID: f.flour.ID, Amount: 500},
		},
	}
}

func TestCreateRecipe(t *testing.T) {
	f := setup(t, "recipe_create")
	ctx := context.Background()

	rec, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Хлеб", rec.Name)
	assert.Equal(t, "/static/uploads/fake.png", rec.Image)
	require.NotNil(t, rec.Author)
	assert.Equal(t, "author", rec.Author.Username)
	require.Len(t, rec.Tags, 1)
	assert.Equal(t, "breakfast", rec.Tags[0].Slug)
	require.Len(t, rec.IngredientLinks, 2)
}

func TestCreateRecipe_Validation(t *testing.T) {
	f := setup(t, "recipe_validation")
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*recipe.CreateRecipeRequest)
		wantErr error
	}{
		{
			"non-positive cooking time",
			func(r *recipe.CreateRecipeRequest) { r.CookingTime = 0 },
			recipe.ErrNonPositiveCookingTime,
		},
		{
			"non-positive portions",
			func(r *recipe.CreateRecipeRequest) { r.Portions = -1 },
			recipe.ErrNonPositivePortions,
		},
		{
			"no tags",
			func(r *recipe.CreateRecipeRequest) { r.Tags = nil },
			recipe.ErrNoTags,
		},
		{
			"no ingredients",
			func(r *recipe.CreateRecipeRequest) { r.Ingredients = nil },
			recipe.ErrNoIngredients,
		},
		{
			"duplicate tags",
			func(r *recipe.CreateRecipeRequest) { r.Tags = []int64{f.tag.ID, f.tag.ID} },
			recipe.ErrDuplicateTag,
		},
		{
			"duplicate ingredients",
			func(r *recipe.CreateRecipeRequest) {
				r.Ingredients = []recipe.IngredientAmount{
					{ID: f.salt.ID, Amount: 5},
					{ID: f.salt.ID, Amount: 10},
				}
			},
			recipe.ErrDuplicateIngredient,
		},
		{
			"non-positive amount",
			func(r *recipe.CreateRecipeRequest) {
				r.Ingredients = []recipe.IngredientAmount{{ID: f.salt.ID, Amount: 0}}
			},
			recipe.ErrNonPositiveAmount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := f.validRequest()
			tc.mutate(&req)
			_, err := f.service.Create(ctx, f.author.ID, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateRecipe_UnknownTag(t *testing.T) {
	f := setup(t, "recipe_unknown_tag")

	req := f.validRequest()
	req.Tags = []int64{9999}

	_, err := f.service.Create(context.Background(), f.author.ID, req)
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)
}

func TestUpdateRecipe_PartialFields(t *testing.T) {
	f := setup(t, "recipe_partial")
	ctx := context.Background()

	rec, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	newName := "Багет"
	updated, err := f.service.Update(ctx, f.author.ID, false, rec.ID, recipe.UpdateRecipeRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Багет", updated.Name)
	// Остальное не тронуто.
	assert.Equal(t, rec.Text, updated.Text)
	assert.Equal(t, rec.CookingTime, updated.CookingTime)
	require.Len(t, updated.IngredientLinks, 2)
}

func TestUpdateRecipe_ReplacesIngredientLinks(t *testing.T) {
	f := setup(t, "recipe_replace")
	ctx := context.Background()

	rec, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	// Оставляем только муку: соль должна исчезнуть из связей.
	newIngredients := []recipe.IngredientAmount{{ID: f.flour.ID, Amount: 300}}
	updated, err := f.service.Update(ctx, f.author.ID, false, rec.ID, recipe.UpdateRecipeRequest{
		Ingredients: &newIngredients,
	})
	require.NoError(t, err)

	require.Len(t, updated.IngredientLinks, 1)
	assert.Equal(t, f.flour.ID, updated.IngredientLinks[0].IngredientID)
	assert.Equal(t, 300.0, updated.IngredientLinks[0].Amount)

	var orphaned int64
	f.db.Model(&recipe.IngredientRecipe{}).
		Where("recipe_id = ? AND ingredient_id = ?", rec.ID, f.salt.ID).
		Count(&orphaned)
	assert.Zero(t, orphaned)
}

func TestUpdateRecipe_OnlyAuthorOrStaff(t *testing.T) {
	f := setup(t, "recipe_author")
	ctx := context.Background()

	rec, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	other := &user.User{
		Email:        "other@test.com",
		Username:     "other",
		FirstName:    "Other",
		LastName:     "User",
		PasswordHash: "$2a$10$dummy",
	}
	require.NoError(t, f.db.Create(other).Error)

	newName := "Чужой"
	_, err = f.service.Update(ctx, other.ID, false, rec.ID, recipe.UpdateRecipeRequest{Name: &newName})
	assert.ErrorIs(t, err, recipe.ErrNotAuthor)

	// Персонал может редактировать чужие рецепты.
	_, err = f.service.Update(ctx, other.ID, true, rec.ID, recipe.UpdateRecipeRequest{Name: &newName})
	assert.NoError(t, err)

	err = f.service.Delete(ctx, other.ID, false, rec.ID)
	assert.ErrorIs(t, err, recipe.ErrNotAuthor)
}

func TestDeleteRecipe_RemovesLinks(t *testing.T) {
	f := setup(t, "recipe_delete")
	ctx := context.Background()

	rec, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, f.author.ID, false, rec.ID))

	_, err = f.repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	var links int64
	f.db.Model(&recipe.IngredientRecipe{}).Where("recipe_id = ?", rec.ID).Count(&links)
	assert.Zero(t, links)
}

func TestListRecipes_FilterByTag(t *testing.T) {
	f := setup(t, "recipe_list_tags")
	ctx := context.Background()

	dinner := &catalog.Tag{Name: "Ужин", Color: "#8775D2", Slug: "dinner"}
	require.NoError(t, f.db.Create(dinner).Error)

	first, err := f.service.Create(ctx, f.author.ID, f.validRequest())
	require.NoError(t, err)

	req := f.validRequest()
	req.Name = "Суп"
	req.Tags = []int64{dinner.ID}
	second, err := f.service.Create(ctx, f.author.ID, req)
	require.NoError(t, err)

	recipes, total, err := f.repo.List(ctx, recipe.Filters{TagSlugs: []string{"dinner"}, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, recipes, 1)
	assert.Equal(t, second.ID, recipes[0].ID)

	// OR-семантика: оба слага — оба рецепта.
	recipes, total, err = f.repo.List(ctx, recipe.Filters{TagSlugs: []string{"dinner", "breakfast"}, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, recipes, 2)
	// Свежие первыми.
	assert.Equal(t, second.ID, recipes[0].ID)
	assert.Equal(t, first.ID, recipes[1].ID)
}
