package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Service contains user registration and subscription logic.
type Service struct {
	repo    *Repository
	recipes RecipeLister
}

func NewService(repo *Repository, recipes RecipeLister) *Service {
	return &Service{repo: repo, recipes: recipes}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	taken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Subscribe подписывает userID на authorID.
// Подписка на себя и дубликат — ошибки валидации.
func (s *Service) Subscribe(ctx context.Context, userID, authorID int64) (*User, error) {
	author, err := s.repo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}
	if err := s.repo.Subscribe(ctx, userID, authorID); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *Service) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	if _, err := s.repo.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Unsubscribe(ctx, userID, authorID)
}

// Subscriptions собирает выдачу "мои подписки": авторы с их рецептами.
// recipesLimit > 0 обрезает список рецептов каждого автора, recipes_count
// при этом остаётся полным.
func (s *Service) Subscriptions(ctx context.Context, userID int64, limit, offset, recipesLimit int) ([]SubscribedAuthorResponse, int64, error) {
	authors, total, err := s.repo.ListSubscribedAuthors(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	results := make([]SubscribedAuthorResponse, 0, len(authors))
	for _, author := range authors {
		briefs, err := s.recipes.BriefsByAuthor(ctx, author.ID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		count, err := s.recipes.CountByAuthor(ctx, author.ID)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, SubscribedAuthorResponse{
			UserResponse: ToUserResponse(&author, true),
			Recipes:      briefs,
			RecipesCount: count,
		})
	}

	return results, total, nil
}

func (s *Service) Profile(ctx context.Context, requesterID, id int64) (*UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.repo.IsSubscribed(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(u, subscribed)
	return &resp, nil
}
