package domain

import "time"

// Player is a registered shop keeper
type Player struct {
	ID        string    `json:"player_id"`
	Username  string    `json:"username"`
	Gold      int       `json:"gold"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCauldronID is the cauldron every player receives on registration
const DefaultCauldronID = "cauldron_1"

// Cauldron is a player's brewing station. A cauldron holds at most one brew.
type Cauldron struct {
	ID          string     `json:"cauldron_id"`
	Owner       string     `json:"owner"`
	Quality     int        `json:"quality"`
	RecipeID    string     `json:"recipe_id,omitempty"`
	BrewStarted *time.Time `json:"brew_started_at,omitempty"`
	BrewEndsAt  *time.Time `json:"brew_ends_at,omitempty"`
}

// IsBrewing reports whether the cauldron holds an active brew
func (c *Cauldron) IsBrewing() bool {
	return c.RecipeID != "" && c.BrewEndsAt != nil
}

// Inventory is a player's full holdings
type Inventory struct {
	Gold        int              `json:"gold"`
	Ingredients []IngredientItem `json:"ingredients"`
	Potions     []Potion         `json:"potions"`
}
