package brewing

import (
	"fmt"
	"strings"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// MissingIngredientsError reports every unmet requirement of a recipe.
// It matches domain.ErrInsufficientIngredients with errors.Is.
type MissingIngredientsError struct {
	RecipeID string
	Missing  []MissingIngredient
}

func (e *MissingIngredientsError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = fmt.Sprintf("%d more %s", m.Missing, m.IngredientType.DisplayName())
	}
	return fmt.Sprintf("%s: need %s", domain.ErrMsgInsufficientIngredients, strings.Join(parts, ", "))
}

// Is reports whether target is domain.ErrInsufficientIngredients
func (e *MissingIngredientsError) Is(target error) bool {
	return target == domain.ErrInsufficientIngredients
}
