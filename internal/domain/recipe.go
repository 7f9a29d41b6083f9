package domain

// PotionEffect is the effect granted by a brewed potion
type PotionEffect string

// Potion effects
const (
	EffectHealing        PotionEffect = "Healing"
	EffectRage           PotionEffect = "Rage"
	EffectInvisibility   PotionEffect = "Invisibility"
	EffectFearAura       PotionEffect = "FearAura"
	EffectSpeed          PotionEffect = "Speed"
	EffectFireResistance PotionEffect = "FireResistance"
	EffectTransformation PotionEffect = "Transformation"
	EffectCurse          PotionEffect = "Curse"
)

// PotionEffectDisplayNames holds the human readable potion names per effect
var PotionEffectDisplayNames = map[PotionEffect]string{
	EffectHealing:        "Healing Potion",
	EffectRage:           "Rage Potion",
	EffectInvisibility:   "Invisibility Potion",
	EffectFearAura:       "Fear Aura Potion",
	EffectSpeed:          "Speed Potion",
	EffectFireResistance: "Fire Resistance Potion",
	EffectTransformation: "Transformation Potion",
	EffectCurse:          "Curse Potion",
}

// RecipeIngredient is a single ingredient requirement of a recipe
type RecipeIngredient struct {
	IngredientType IngredientType `json:"ingredient_type"`
	Quantity       int            `json:"quantity"`
}

// Recipe describes a potion recipe. Recipes are immutable and indexed by day.
type Recipe struct {
	ID          string             `json:"recipe_id"`
	Name        string             `json:"name"`
	Effect      PotionEffect       `json:"effect"`
	Difficulty  int                `json:"difficulty"`
	BaseTime    int                `json:"base_time"` // seconds
	BaseValue   int                `json:"base_value"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}
