package discord

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/handler"
)

// displayName turns identifiers such as "CursedVillage" or "human_hunter"
// into "Cursed Village" and "Human Hunter"
func displayName(id string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range id {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(b.String())
}

func formatRecipe(v *handler.RecipeView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (day %d)\n", v.Name, v.Day)
	fmt.Fprintf(&b, "Effect: %s · Difficulty: %d · Brew time: %s · Value: %d gold\n",
		displayName(string(v.Effect)), v.Difficulty, time.Duration(v.BaseTime)*time.Second, v.BaseValue)

	b.WriteString("\n__Ingredients__\n")
	for _, ing := range v.Ingredients {
		zone := domain.IngredientZones[ing.IngredientType]
		fmt.Fprintf(&b, "• %dx %s (%s)\n", ing.Quantity, ing.IngredientType.DisplayName(), displayName(string(zone)))
	}

	switch {
	case v.Today:
		b.WriteString("\nThis is today's recipe.")
	case !v.Unlocked:
		b.WriteString("\n🔒 Unlocks later this week.")
	}
	return b.String()
}

func formatInventory(inv *domain.Inventory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 **%d** gold\n", inv.Gold)

	if len(inv.Ingredients) == 0 && len(inv.Potions) == 0 {
		b.WriteString("\n" + MsgInventoryEmpty)
		return b.String()
	}

	if len(inv.Ingredients) > 0 {
		b.WriteString("\n__Ingredients__\n")
		for _, item := range inv.Ingredients {
			fmt.Fprintf(&b, "**%s** x%d\n", item.IngredientType.DisplayName(), item.Quantity)
		}
	}

	if len(inv.Potions) > 0 {
		b.WriteString("\n__Potions__\n")
		for _, p := range inv.Potions {
			fmt.Fprintf(&b, "**%s** · quality %d · worth %d gold\n", potionName(p.Effect), p.Quality, p.Value)
		}
	}
	return b.String()
}

func potionName(effect domain.PotionEffect) string {
	if name, ok := domain.PotionEffectDisplayNames[effect]; ok {
		return name
	}
	return displayName(string(effect))
}

func formatGathered(gathered []domain.IngredientType) string {
	if len(gathered) == 0 {
		return MsgNothingGained
	}
	names := make([]string, 0, len(gathered))
	for _, g := range gathered {
		names = append(names, "**"+g.DisplayName()+"**")
	}
	return "You gathered " + strings.Join(names, ", ") + "."
}

func formatOrders(orders []domain.Order) string {
	if len(orders) == 0 {
		return MsgNoOrders
	}
	var b strings.Builder
	for _, o := range orders {
		mark := "🕯️"
		if o.Fulfilled {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s `%s` %s wants **%s** for **%d** gold\n",
			mark, o.ID, displayName(string(o.Faction)), o.RecipeName, o.Price)
	}
	return b.String()
}

// discordRelativeTime renders t as a Discord relative timestamp ("in 2 minutes")
func discordRelativeTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
