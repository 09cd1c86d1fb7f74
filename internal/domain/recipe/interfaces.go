package recipe

import (
	"context"

	"foodgram/internal/domain/catalog"
)

// TagSource и IngredientSource реализуются каталогом.
type TagSource interface {
	GetTagsByIDs(ctx context.Context, ids []int64) ([]catalog.Tag, error)
}

type IngredientSource interface {
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]catalog.Ingredient, error)
}

// ImageStore сохраняет inline base64 картинку и возвращает публичный URL.
type ImageStore interface {
	SaveDataURI(dataURI string) (string, error)
}

// FavoriteChecker / CartChecker / SubscriptionChecker нужны хендлеру
// для вычисляемых полей выдачи. Реализуются пакетами favorite, cart и user.
type FavoriteChecker interface {
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type CartChecker interface {
	Portions(ctx context.Context, userID, recipeID int64) (int, error)
}

type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error)
}
