package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/catalog"
)

func setup(t *testing.T, name string) (*gorm.DB, *catalog.Repository) {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db, catalog.NewRepository(db)
}

func TestTags(t *testing.T) {
	_, repo := setup(t, "catalog_tags")
	ctx := context.Background()

	breakfast := &catalog.Tag{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}
	dinner := &catalog.Tag{Name: "Ужин", Color: "#8775D2", Slug: "dinner"}
	require.NoError(t, repo.CreateTag(ctx, breakfast))
	require.NoError(t, repo.CreateTag(ctx, dinner))

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	got, err := repo.GetTag(ctx, breakfast.ID)
	require.NoError(t, err)
	assert.Equal(t, "breakfast", got.Slug)

	_, err = repo.GetTag(ctx, 9999)
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)

	// Порядок ответа повторяет порядок запрошенных id.
	ordered, err := repo.GetTagsByIDs(ctx, []int64{dinner.ID, breakfast.ID})
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Equal(t, "dinner", ordered[0].Slug)
	assert.Equal(t, "breakfast", ordered[1].Slug)

	_, err = repo.GetTagsByIDs(ctx, []int64{breakfast.ID, 9999})
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)

	require.NoError(t, repo.DeleteTag(ctx, dinner.ID))
	err = repo.DeleteTag(ctx, dinner.ID)
	assert.ErrorIs(t, err, catalog.ErrTagNotFound)
}

func TestListIngredients_PrefixSearch(t *testing.T) {
	_, repo := setup(t, "catalog_ingredients")
	ctx := context.Background()

	for _, ing := range []*catalog.Ingredient{
		{Name: "Cabbage", MeasurementUnit: "г"},
		{Name: "Carrot", MeasurementUnit: "шт"},
		{Name: "Milk", MeasurementUnit: "мл"},
	} {
		require.NoError(t, repo.CreateIngredient(ctx, ing))
	}

	all, err := repo.ListIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := repo.ListIngredients(ctx, "ca")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Cabbage", found[0].Name)
	assert.Equal(t, "Carrot", found[1].Name)

	none, err := repo.ListIngredients(ctx, "rro")
	require.NoError(t, err)
	assert.Empty(t, none, "search matches from the start of the name only")
}
