package cart

import (
	"context"
	"fmt"
	"strings"
)

const (
	listHeader = "⁃ Список покупок ⁃"
	listFooter = "⁃ Foodgram ⁃"
)

// nonQuantifiableUnits — единицы измерения, которые не суммируются
// и в список покупок не попадают.
var nonQuantifiableUnits = map[string]bool{
	"по вкусу": true,
	"to taste": true,
}

// Service строит текстовый список покупок из корзины пользователя.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

type ingredientKey struct {
	name string
	unit string
}

// BuildShoppingList агрегирует ингредиенты всех рецептов корзины.
//
// Количество каждой строки рецепта масштабируется отношением
// portions_to_shop / recipe.portions и суммируется по паре
// (название, единица измерения). Порядок строк — порядок первого
// появления ингредиента; итог обрезается до целого (не округляется).
func (s *Service) BuildShoppingList(ctx context.Context, userID int64) (string, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var recipeNames []string
	var order []ingredientKey
	totals := make(map[ingredientKey]float64)

	for _, entry := range entries {
		if entry.Recipe == nil || entry.Recipe.Portions <= 0 {
			continue
		}
		recipeNames = append(recipeNames, entry.Recipe.Name)
		ratio := float64(entry.PortionsToShop) / float64(entry.Recipe.Portions)

		for _, link := range entry.Recipe.IngredientLinks {
			if link.Ingredient == nil {
				continue
			}
			if nonQuantifiableUnits[strings.ToLower(link.Ingredient.MeasurementUnit)] {
				continue
			}

			key := ingredientKey{
				name: link.Ingredient.Name,
				unit: link.Ingredient.MeasurementUnit,
			}
			if _, seen := totals[key]; !seen {
				order = append(order, key)
			}
			totals[key] += link.Amount * ratio
		}
	}

	var b strings.Builder
	b.WriteString(listHeader + "\n")
	b.WriteString("для приготовления: " + strings.Join(recipeNames, ", ") + "\n")
	for _, key := range order {
		fmt.Fprintf(&b, "▻ %s (%s) - %d\n", key.name, key.unit, int(totals[key]))
	}
	b.WriteString(listFooter)

	return b.String(), nil
}
