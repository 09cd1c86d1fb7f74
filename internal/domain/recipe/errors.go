package recipe

import "errors"

var (
	ErrNotFound                = errors.New("recipe not found")
	ErrNotAuthor               = errors.New("only the author or staff can modify this recipe")
	ErrNonPositiveCookingTime  = errors.New("cooking_time must be a positive integer")
	ErrNonPositivePortions     = errors.New("portions must be a positive integer")
	ErrNonPositiveAmount       = errors.New("ingredient amount must be positive")
	ErrDuplicateTag            = errors.New("duplicate tag in request")
	ErrDuplicateIngredient     = errors.New("duplicate ingredient in request")
	ErrInvalidImage            = errors.New("image must be a valid base64 data URI")
	ErrNoIngredients           = errors.New("recipe must have at least one ingredient")
	ErrNoTags                  = errors.New("recipe must have at least one tag")
)
