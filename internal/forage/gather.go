package forage

import (
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/recipe"
)

// Gatherable returns the ingredient types a forage in zone yields on day:
// every type spawning in zone that a recipe of days 1..day uses.
func Gatherable(zone domain.Zone, day int) []domain.IngredientType {
	var out []domain.IngredientType
	for _, t := range recipe.UnlockedIngredients(day) {
		if domain.IngredientZones[t] == zone {
			out = append(out, t)
		}
	}
	return out
}

// AddIngredient adds qty of t to the first slot holding t, or appends a new
// slot at the end of the bag. items is not modified.
func AddIngredient(items []domain.IngredientItem, owner string, t domain.IngredientType, qty int) []domain.IngredientItem {
	out := make([]domain.IngredientItem, len(items), len(items)+1)
	copy(out, items)

	for i := range out {
		if out[i].IngredientType == t {
			out[i].Quantity += qty
			return out
		}
	}
	return append(out, domain.IngredientItem{
		Owner:          owner,
		Slot:           len(out),
		IngredientType: t,
		Quantity:       qty,
	})
}
