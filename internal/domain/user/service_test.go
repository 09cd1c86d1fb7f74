package user_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

func setup(t *testing.T, name string) (*gorm.DB, *user.Service, *user.Repository) {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := user.NewRepository(db)
	service := user.NewService(repo, recipe.NewRepository(db))
	return db, service, repo
}

func register(t *testing.T, s *user.Service, email, username string) *user.User {
	t.Helper()

	u, err := s.Register(context.Background(), user.RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	require.NoError(t, err)
	return u
}

func TestRegister_UniqueEmailAndUsername(t *testing.T) {
	_, service, _ := setup(t, "user_register")
	ctx := context.Background()

	register(t, service, "one@test.com", "one")

	_, err := service.Register(ctx, user.RegisterRequest{
		Email:     "ONE@test.com", // регистр не спасает от дубликата
		Username:  "two",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	_, err = service.Register(ctx, user.RegisterRequest{
		Email:     "two@test.com",
		Username:  "one",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegister_HashesPassword(t *testing.T) {
	_, service, repo := setup(t, "user_hash")

	u := register(t, service, "one@test.com", "one")

	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSubscribe(t *testing.T) {
	_, service, repo := setup(t, "user_subscribe")
	ctx := context.Background()

	follower := register(t, service, "follower@test.com", "follower")
	author := register(t, service, "author@test.com", "author")

	_, err := service.Subscribe(ctx, follower.ID, follower.ID)
	assert.ErrorIs(t, err, user.ErrSelfSubscribe)

	_, err = service.Subscribe(ctx, follower.ID, 9999)
	assert.ErrorIs(t, err, user.ErrNotFound)

	got, err := service.Subscribe(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)

	_, err = service.Subscribe(ctx, follower.ID, author.ID)
	assert.ErrorIs(t, err, user.ErrAlreadySubscribed)

	subscribed, err := repo.IsSubscribed(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestUnsubscribe(t *testing.T) {
	_, service, _ := setup(t, "user_unsubscribe")
	ctx := context.Background()

	follower := register(t, service, "follower@test.com", "follower")
	author := register(t, service, "author@test.com", "author")

	err := service.Unsubscribe(ctx, follower.ID, author.ID)
	assert.ErrorIs(t, err, user.ErrNotSubscribed)

	_, err = service.Subscribe(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	require.NoError(t, service.Unsubscribe(ctx, follower.ID, author.ID))

	err = service.Unsubscribe(ctx, follower.ID, author.ID)
	assert.ErrorIs(t, err, user.ErrNotSubscribed)
}

func TestSubscriptions_RecipesLimitKeepsFullCount(t *testing.T) {
	db, service, _ := setup(t, "user_subscriptions")
	ctx := context.Background()

	follower := register(t, service, "follower@test.com", "follower")
	author := register(t, service, "author@test.com", "author")

	for i := 0; i < 5; i++ {
		rec := &recipe.Recipe{
			Name:        fmt.Sprintf("Рецепт %d", i+1),
			AuthorID:    author.ID,
			Text:        "text",
			Image:       "/static/uploads/test.png",
			CookingTime: 10,
			Portions:    2,
		}
		require.NoError(t, db.Create(rec).Error)
	}

	_, err := service.Subscribe(ctx, follower.ID, author.ID)
	require.NoError(t, err)

	results, total, err := service.Subscriptions(ctx, follower.ID, 10, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "author", got.Username)
	assert.True(t, got.IsSubscribed)
	assert.Len(t, got.Recipes, 2, "recipes_limit truncates the list")
	assert.EqualValues(t, 5, got.RecipesCount, "recipes_count stays full")
}

func TestIsSubscribed_AnonymousIsFalse(t *testing.T) {
	_, service, repo := setup(t, "user_anon")

	author := register(t, service, "author@test.com", "author")

	subscribed, err := repo.IsSubscribed(context.Background(), 0, author.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}
