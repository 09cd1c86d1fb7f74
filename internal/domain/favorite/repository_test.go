package favorite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

func setup(t *testing.T, name string) (*gorm.DB, *favorite.Repository, int64, int64) {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	u := &user.User{
		Email:        "fan@test.com",
		Username:     "fan",
		FirstName:    "Fan",
		LastName:     "Test",
		PasswordHash: "$2a$10$dummy",
	}
	require.NoError(t, db.Create(u).Error)

	rec := &recipe.Recipe{
		Name:        "Борщ",
		AuthorID:    u.ID,
		Text:        "text",
		Image:       "/static/uploads/test.png",
		CookingTime: 60,
		Portions:    4,
	}
	require.NoError(t, db.Create(rec).Error)

	return db, favorite.NewRepository(db), u.ID, rec.ID
}

func TestAddAndRemoveFavorite(t *testing.T) {
	_, repo, userID, recipeID := setup(t, "fav_basic")
	ctx := context.Background()

	exists, err := repo.Exists(ctx, userID, recipeID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, userID, recipeID))

	exists, err = repo.Exists(ctx, userID, recipeID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Remove(ctx, userID, recipeID))

	exists, err = repo.Exists(ctx, userID, recipeID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	_, repo, userID, recipeID := setup(t, "fav_duplicate")
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, userID, recipeID))
	err := repo.Add(ctx, userID, recipeID)
	assert.ErrorIs(t, err, favorite.ErrAlreadyFavorited)
}

func TestRemoveFavorite_Missing(t *testing.T) {
	_, repo, userID, recipeID := setup(t, "fav_missing")

	err := repo.Remove(context.Background(), userID, recipeID)
	assert.ErrorIs(t, err, favorite.ErrNotFavorited)
}
