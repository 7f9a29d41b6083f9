package brewing

import (
	"time"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// baseSuccessMultiplier scales cauldron quality into a success chance
const baseSuccessMultiplier = 10

// MissingIngredient describes one unmet recipe requirement
type MissingIngredient struct {
	IngredientType domain.IngredientType `json:"ingredient_type"`
	Required       int                   `json:"required"`
	Owned          int                   `json:"owned"`
	Missing        int                   `json:"missing"`
}

// RequirementCheck is the outcome of CheckIngredientRequirements
type RequirementCheck struct {
	HasAll  bool                `json:"has_all"`
	Missing []MissingIngredient `json:"missing,omitempty"`
}

// BrewPlan is a validated brew ready to be stored on a cauldron
type BrewPlan struct {
	CauldronID string
	RecipeID   string
	StartedAt  time.Time
	EndsAt     time.Time
	// Remaining is the inventory left after the recipe is consumed
	Remaining []domain.IngredientItem
}

// BrewResult is the outcome of a finished brew
type BrewResult struct {
	Potion     domain.Potion `json:"potion"`
	GoldEarned int           `json:"gold_earned"`
}

// CheckIngredientRequirements compares the recipe with the inventory. Owned
// quantities are summed across every slot of the same type.
func CheckIngredientRequirements(recipe domain.Recipe, items []domain.IngredientItem) RequirementCheck {
	owned := make(map[domain.IngredientType]int, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			owned[item.IngredientType] += item.Quantity
		}
	}

	var missing []MissingIngredient
	for _, req := range recipe.Ingredients {
		have := owned[req.IngredientType]
		if have < req.Quantity {
			missing = append(missing, MissingIngredient{
				IngredientType: req.IngredientType,
				Required:       req.Quantity,
				Owned:          have,
				Missing:        req.Quantity - have,
			})
		}
	}

	return RequirementCheck{HasAll: len(missing) == 0, Missing: missing}
}

// ConsumeIngredients returns a copy of items with the recipe removed. Slots
// of a type are drained in slot order, emptied slots are dropped and the
// rest are renumbered from 0. items itself is never modified.
func ConsumeIngredients(recipe domain.Recipe, items []domain.IngredientItem) ([]domain.IngredientItem, error) {
	if check := CheckIngredientRequirements(recipe, items); !check.HasAll {
		return nil, &MissingIngredientsError{RecipeID: recipe.ID, Missing: check.Missing}
	}

	work := append([]domain.IngredientItem(nil), items...)
	for _, req := range recipe.Ingredients {
		remaining := req.Quantity
		for i := range work {
			if remaining == 0 {
				break
			}
			if work[i].IngredientType != req.IngredientType || work[i].Quantity <= 0 {
				continue
			}
			take := min(work[i].Quantity, remaining)
			work[i].Quantity -= take
			remaining -= take
		}
	}

	out := make([]domain.IngredientItem, 0, len(work))
	for _, item := range work {
		if item.Quantity > 0 {
			item.Slot = len(out)
			out = append(out, item)
		}
	}
	return out, nil
}

// SuccessChance is cauldronQuality*10/difficulty. Difficulty below 1 counts as 1.
func SuccessChance(cauldronQuality, difficulty int) float64 {
	if difficulty < 1 {
		difficulty = 1
	}
	return float64(cauldronQuality*baseSuccessMultiplier) / float64(difficulty)
}

// CreatePotion brews one potion of recipe. Quality is a binary step: high
// when the success chance reaches the threshold, low otherwise. The caller
// assigns the potion ID and owner.
func CreatePotion(recipe domain.Recipe, cauldronQuality, difficulty int) domain.Potion {
	quality := domain.QualityLow
	if SuccessChance(cauldronQuality, difficulty) >= domain.SuccessThreshold {
		quality = domain.QualityHigh
	}
	return domain.Potion{
		RecipeID: recipe.ID,
		Effect:   recipe.Effect,
		Quality:  quality,
		Value:    recipe.BaseValue,
	}
}

// StartBrew checks and consumes the recipe's ingredients and opens the brew
// window [now, now+BaseTime]
func StartBrew(recipe domain.Recipe, items []domain.IngredientItem, cauldronID string, now time.Time) (BrewPlan, error) {
	remaining, err := ConsumeIngredients(recipe, items)
	if err != nil {
		return BrewPlan{}, err
	}
	return BrewPlan{
		CauldronID: cauldronID,
		RecipeID:   recipe.ID,
		StartedAt:  now,
		EndsAt:     now.Add(time.Duration(recipe.BaseTime) * time.Second),
		Remaining:  remaining,
	}, nil
}

// FinishBrew creates the potion using the recipe's own difficulty. A high
// quality potion also earns its base value in gold.
func FinishBrew(recipe domain.Recipe, cauldronQuality int) BrewResult {
	potion := CreatePotion(recipe, cauldronQuality, recipe.Difficulty)
	gold := 0
	if potion.Quality >= domain.QualityHigh {
		gold = recipe.BaseValue
	}
	return BrewResult{Potion: potion, GoldEarned: gold}
}
