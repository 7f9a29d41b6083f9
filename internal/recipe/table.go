package recipe

import (
	"fmt"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// table holds the recipe of each day of the week, index 0 is day 1
var table = []domain.Recipe{
	{
		ID:         "recipe_day_1",
		Name:       "Healing Elixir",
		Effect:     domain.EffectHealing,
		Difficulty: 1,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  50,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientMandrakeRoot, Quantity: 2},
			{IngredientType: domain.IngredientGhostMushroom, Quantity: 1},
		},
	},
	{
		ID:         "recipe_day_2",
		Name:       "Berserker's Brew",
		Effect:     domain.EffectRage,
		Difficulty: 2,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  75,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientWyrmScale, Quantity: 1},
			{IngredientType: domain.IngredientBatWing, Quantity: 2},
		},
	},
	{
		ID:         "recipe_day_3",
		Name:       "Shadow Blend",
		Effect:     domain.EffectInvisibility,
		Difficulty: 2,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  100,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientVampireBloom, Quantity: 1},
			{IngredientType: domain.IngredientGraveDust, Quantity: 2},
		},
	},
	{
		ID:         "recipe_day_4",
		Name:       "Terror Tonic",
		Effect:     domain.EffectFearAura,
		Difficulty: 3,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  125,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientGraveDust, Quantity: 3},
			{IngredientType: domain.IngredientPumpkinSeed, Quantity: 1},
		},
	},
	{
		ID:         "recipe_day_5",
		Name:       "Swiftness Serum",
		Effect:     domain.EffectSpeed,
		Difficulty: 3,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  150,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientMandrakeRoot, Quantity: 1},
			{IngredientType: domain.IngredientGhostMushroom, Quantity: 2},
			{IngredientType: domain.IngredientWyrmScale, Quantity: 1},
		},
	},
	{
		ID:         "recipe_day_6",
		Name:       "Flame Ward Potion",
		Effect:     domain.EffectFireResistance,
		Difficulty: 4,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  175,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientWyrmScale, Quantity: 2},
			{IngredientType: domain.IngredientVampireBloom, Quantity: 1},
			{IngredientType: domain.IngredientBatWing, Quantity: 1},
		},
	},
	{
		ID:         "recipe_day_7",
		Name:       "Cursed Transformation",
		Effect:     domain.EffectTransformation,
		Difficulty: 5,
		BaseTime:   domain.DefaultBrewTimeSeconds,
		BaseValue:  200,
		Ingredients: []domain.RecipeIngredient{
			{IngredientType: domain.IngredientMandrakeRoot, Quantity: 1},
			{IngredientType: domain.IngredientGraveDust, Quantity: 1},
			{IngredientType: domain.IngredientVampireBloom, Quantity: 1},
			{IngredientType: domain.IngredientPumpkinSeed, Quantity: 2},
		},
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, r := range table {
		m[r.ID] = i
	}
	return m
}()

// Count is the number of recipes in the weekly rotation
func Count() int {
	return len(table)
}

// index maps any day number onto the table, wrapping in both directions
func index(day int) int {
	n := len(table)
	return ((day-1)%n + n) % n
}

// ForDay returns the recipe for the given day. Days wrap cyclically so that
// ForDay(d) == ForDay(d+7) for every integer d.
func ForDay(day int) domain.Recipe {
	return clone(table[index(day)])
}

// DayOf returns the day (1..7) a recipe belongs to
func DayOf(recipeID string) (int, bool) {
	i, ok := byID[recipeID]
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// ByID looks up a recipe by its identifier
func ByID(recipeID string) (domain.Recipe, error) {
	i, ok := byID[recipeID]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}
	return clone(table[i]), nil
}

// All returns every recipe in day order
func All() []domain.Recipe {
	out := make([]domain.Recipe, len(table))
	for i, r := range table {
		out[i] = clone(r)
	}
	return out
}

// UnlockedThrough returns the recipes of days 1..day in day order.
// Days past the end of the week unlock the full table.
func UnlockedThrough(day int) []domain.Recipe {
	if day < 1 {
		return nil
	}
	if day > len(table) {
		day = len(table)
	}
	return All()[:day]
}

// IsUnlocked reports whether recipeID is available on the given day
func IsUnlocked(recipeID string, day int) bool {
	d, ok := DayOf(recipeID)
	return ok && d <= day
}

// UnlockedIngredients returns the distinct ingredient types used by the
// recipes of days 1..day, in first-seen order
func UnlockedIngredients(day int) []domain.IngredientType {
	seen := make(map[domain.IngredientType]bool)
	var out []domain.IngredientType
	for _, r := range UnlockedThrough(day) {
		for _, ing := range r.Ingredients {
			if !seen[ing.IngredientType] {
				seen[ing.IngredientType] = true
				out = append(out, ing.IngredientType)
			}
		}
	}
	return out
}

func clone(r domain.Recipe) domain.Recipe {
	r.Ingredients = append([]domain.RecipeIngredient(nil), r.Ingredients...)
	return r
}
