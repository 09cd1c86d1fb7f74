package user

import "context"

// RecipeBrief — короткое представление рецепта в выдаче подписок.
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeLister отдаёт рецепты автора для выдачи подписок.
// Реализуется пакетом recipe, чтобы не тянуть его сюда импортом.
type RecipeLister interface {
	BriefsByAuthor(ctx context.Context, authorID int64, limit int) ([]RecipeBrief, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
