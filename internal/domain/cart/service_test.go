package cart_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

func setupDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email, username string) *user.User {
	t.Helper()

	u := &user.User{
		Email:        email,
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$dummy",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *catalog.Ingredient {
	t.Helper()

	ing := &catalog.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

type ingredientPortion struct {
	ingredient *catalog.Ingredient
	amount     float64
}

func createRecipe(t *testing.T, db *gorm.DB, authorID int64, name string, portions int, items []ingredientPortion) *recipe.Recipe {
	t.Helper()

	rec := &recipe.Recipe{
		Name:        name,
		AuthorID:    authorID,
		Text:        "test recipe",
		Image:       "/static/uploads/test.png",
		CookingTime: 30,
		Portions:    portions,
	}
	require.NoError(t, db.Create(rec).Error)

	for _, item := range items {
		link := &recipe.IngredientRecipe{
			RecipeID:     rec.ID,
			IngredientID: item.ingredient.ID,
			Amount:       item.amount,
		}
		require.NoError(t, db.Create(link).Error)
	}
	return rec
}

func TestBuildShoppingList_ScalesByPortionsAndMerges(t *testing.T) {
	db := setupDB(t, "cart_scale")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)
	ctx := context.Background()

	u := createUser(t, db, "buyer@test.com", "buyer")
	salt := createIngredient(t, db, "Соль", "г")
	sugar := createIngredient(t, db, "Сахар", "г")

	// Рецепт на 2 порции с 10 г соли, закупаемся на 4 порции.
	soup := createRecipe(t, db, u.ID, "Суп", 2, []ingredientPortion{
		{salt, 10},
		{sugar, 3},
	})
	// Рецепт на 1 порцию с 5 г соли, закупаемся на 1 порцию.
	pie := createRecipe(t, db, u.ID, "Пирог", 1, []ingredientPortion{
		{salt, 5},
	})

	require.NoError(t, repo.Add(ctx, u.ID, soup.ID, 4))
	require.NoError(t, repo.Add(ctx, u.ID, pie.ID, 1))

	doc, err := service.BuildShoppingList(ctx, u.ID)
	require.NoError(t, err)

	// 10 * (4/2) + 5 * (1/1) = 25
	assert.Contains(t, doc, "▻ Соль (г) - 25")
	// 3 * (4/2) = 6
	assert.Contains(t, doc, "▻ Сахар (г) - 6")
	assert.Contains(t, doc, "для приготовления: Суп, Пирог")
	assert.True(t, strings.HasPrefix(doc, "⁃ Список покупок ⁃\n"))
	assert.True(t, strings.HasSuffix(doc, "⁃ Foodgram ⁃"))
}

func TestBuildShoppingList_SkipsToTasteUnits(t *testing.T) {
	db := setupDB(t, "cart_to_taste")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)
	ctx := context.Background()

	u := createUser(t, db, "buyer@test.com", "buyer")
	pepper := createIngredient(t, db, "Перец", "по вкусу")
	pepperEn := createIngredient(t, db, "Paprika", "To Taste")
	flour := createIngredient(t, db, "Мука", "г")

	rec := createRecipe(t, db, u.ID, "Хлеб", 1, []ingredientPortion{
		{pepper, 1},
		{pepperEn, 1},
		{flour, 200},
	})
	require.NoError(t, repo.Add(ctx, u.ID, rec.ID, 1))

	doc, err := service.BuildShoppingList(ctx, u.ID)
	require.NoError(t, err)

	assert.NotContains(t, doc, "Перец")
	assert.NotContains(t, doc, "Paprika")
	assert.Contains(t, doc, "▻ Мука (г) - 200")
}

func TestBuildShoppingList_SameNameDifferentUnitKeptApart(t *testing.T) {
	db := setupDB(t, "cart_units")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)
	ctx := context.Background()

	u := createUser(t, db, "buyer@test.com", "buyer")
	milkMl := createIngredient(t, db, "Молоко", "мл")
	milkL := createIngredient(t, db, "Молоко", "л")

	rec := createRecipe(t, db, u.ID, "Каша", 1, []ingredientPortion{
		{milkMl, 200},
		{milkL, 1},
	})
	require.NoError(t, repo.Add(ctx, u.ID, rec.ID, 1))

	doc, err := service.BuildShoppingList(ctx, u.ID)
	require.NoError(t, err)

	assert.Contains(t, doc, "▻ Молоко (мл) - 200")
	assert.Contains(t, doc, "▻ Молоко (л) - 1")
}

func TestBuildShoppingList_TruncatesFractionalTotals(t *testing.T) {
	db := setupDB(t, "cart_truncate")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)
	ctx := context.Background()

	u := createUser(t, db, "buyer@test.com", "buyer")
	butter := createIngredient(t, db, "Масло", "г")

	// 50 * (1/3) = 16.66 -> 16, не округление вверх.
	rec := createRecipe(t, db, u.ID, "Печенье", 3, []ingredientPortion{
		{butter, 50},
	})
	require.NoError(t, repo.Add(ctx, u.ID, rec.ID, 1))

	doc, err := service.BuildShoppingList(ctx, u.ID)
	require.NoError(t, err)

	assert.Contains(t, doc, "▻ Масло (г) - 16")
}

func TestBuildShoppingList_KeepsFirstAppearanceOrder(t *testing.T) {
	db := setupDB(t, "cart_order")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)
	ctx := context.Background()

	u := createUser(t, db, "buyer@test.com", "buyer")
	onion := createIngredient(t, db, "Лук", "шт")
	carrot := createIngredient(t, db, "Морковь", "шт")

	first := createRecipe(t, db, u.ID, "Первое", 1, []ingredientPortion{
		{onion, 1},
		{carrot, 2},
	})
	second := createRecipe(t, db, u.ID, "Второе", 1, []ingredientPortion{
		{carrot, 1},
		{onion, 3},
	})
	require.NoError(t, repo.Add(ctx, u.ID, first.ID, 1))
	require.NoError(t, repo.Add(ctx, u.ID, second.ID, 1))

	doc, err := service.BuildShoppingList(ctx, u.ID)
	require.NoError(t, err)

	onionPos := strings.Index(doc, "▻ Лук")
	carrotPos := strings.Index(doc, "▻ Морковь")
	require.True(t, onionPos > 0 && carrotPos > 0)
	assert.Less(t, onionPos, carrotPos, "onion appeared first, must be listed first")

	assert.Contains(t, doc, "▻ Лук (шт) - 4")
	assert.Contains(t, doc, "▻ Морковь (шт) - 3")
}

func TestBuildShoppingList_EmptyCart(t *testing.T) {
	db := setupDB(t, "cart_empty")
	repo := cart.NewRepository(db)
	service := cart.NewService(repo)

	u := createUser(t, db, "buyer@test.com", "buyer")

	doc, err := service.BuildShoppingList(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Equal(t, "⁃ Список покупок ⁃\nдля приготовления: \n⁃ Foodgram ⁃", doc)
}
