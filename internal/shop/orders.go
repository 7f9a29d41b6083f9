package shop

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/recipe"
)

// Price multiplier range applied to a recipe's base value
const (
	priceMultiplierMin  = 0.8
	priceMultiplierSpan = 0.7
)

// FulfillResult is the outcome of selling a potion against an order. Order
// and Potion are the updated copies.
type FulfillResult struct {
	Order      domain.Order  `json:"order"`
	Potion     domain.Potion `json:"potion"`
	GoldEarned int           `json:"gold_earned"`
}

// GenerateCustomerOrders draws tonight's orders for every recipe unlocked
// on days 1..day. Today's recipe gets U[min, 2*max] orders and older recipes
// U[min, max]. The result is shuffled. rng drives counts, prices, factions
// and order; ids are random so a fixed seed never repeats them.
func GenerateCustomerOrders(rng *rand.Rand, day, minOrders, maxOrders int, now time.Time) ([]domain.Order, error) {
	if minOrders < 0 || maxOrders < minOrders {
		return nil, fmt.Errorf("%w: min=%d max=%d", domain.ErrInvalidOrderBounds, minOrders, maxOrders)
	}

	unlocked := recipe.UnlockedThrough(day)
	if len(unlocked) == 0 {
		return nil, nil
	}
	today := recipe.ForDay(day).ID

	var orders []domain.Order
	for i, r := range unlocked {
		upper := maxOrders
		if r.ID == today {
			upper = 2 * maxOrders
		}
		count := minOrders + rng.Intn(upper-minOrders+1)

		for n := 0; n < count; n++ {
			faction := domain.AllFactions[rng.Intn(len(domain.AllFactions))]
			price := int(math.Floor(float64(r.BaseValue) * (priceMultiplierMin + rng.Float64()*priceMultiplierSpan)))

			orders = append(orders, domain.Order{
				ID:         uuid.NewString(),
				BuyerID:    fmt.Sprintf("customer_%s_%d", faction, n),
				RecipeID:   r.ID,
				RecipeName: r.Name,
				RecipeDay:  i + 1,
				Faction:    faction,
				Price:      price,
				Deadline:   now.Add(domain.OrderDeadline),
				CreatedAt:  now,
			})
		}
	}

	rng.Shuffle(len(orders), func(i, j int) {
		orders[i], orders[j] = orders[j], orders[i]
	})
	return orders, nil
}

// FindMatchingPotion returns the first unsold potion brewed from the order's recipe
func FindMatchingPotion(order domain.Order, potions []domain.Potion) (domain.Potion, bool) {
	for _, p := range potions {
		if p.RecipeID == order.RecipeID && !p.Sold {
			return p, true
		}
	}
	return domain.Potion{}, false
}

// FulfillOrder sells potion against order. The returned order is marked
// fulfilled and the returned potion sold; the inputs are left untouched.
func FulfillOrder(order domain.Order, potion domain.Potion) (FulfillResult, error) {
	if order.Fulfilled {
		return FulfillResult{}, fmt.Errorf("%w: %s", domain.ErrOrderAlreadyFulfilled, order.ID)
	}
	if potion.RecipeID != order.RecipeID {
		return FulfillResult{}, fmt.Errorf("%w: order wants %s, potion is %s",
			domain.ErrRecipeMismatch, order.RecipeID, potion.RecipeID)
	}

	order.Fulfilled = true
	potion.Sold = true
	return FulfillResult{
		Order:      order,
		Potion:     potion,
		GoldEarned: order.Price,
	}, nil
}

// CalculateTotalEarnings sums the prices of fulfilled orders
func CalculateTotalEarnings(orders []domain.Order) int {
	total := 0
	for _, o := range orders {
		if o.Fulfilled {
			total += o.Price
		}
	}
	return total
}
