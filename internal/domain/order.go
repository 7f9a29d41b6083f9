package domain

import "time"

// Faction is the faction a customer belongs to
type Faction string

// Factions
const (
	FactionDemon       Faction = "Demon"
	FactionZombie      Faction = "Zombie"
	FactionVampire     Faction = "Vampire"
	FactionGhost       Faction = "Ghost"
	FactionHumanHunter Faction = "HumanHunter"
)

// AllFactions lists the customer factions in draw order
var AllFactions = []Faction{
	FactionDemon,
	FactionZombie,
	FactionVampire,
	FactionGhost,
	FactionHumanHunter,
}

// Potion is a brewed potion held by a player until it is sold
type Potion struct {
	ID        string       `json:"potion_id"`
	Owner     string       `json:"owner"`
	RecipeID  string       `json:"recipe_id"`
	Effect    PotionEffect `json:"effect"`
	Quality   int          `json:"quality"`
	Value     int          `json:"value"`
	Sold      bool         `json:"sold,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

// Order is a customer request for a potion of a given recipe.
// Orders move one way from unfulfilled to fulfilled.
type Order struct {
	ID            string    `json:"order_id"`
	Owner         string    `json:"owner,omitempty"`
	BuyerID       string    `json:"buyer_id"`
	RecipeID      string    `json:"recipe_id"`
	RecipeName    string    `json:"recipe_name"`
	RecipeDay     int       `json:"recipe_day"`
	Faction       Faction   `json:"faction"`
	Price         int       `json:"price"`
	Deadline      time.Time `json:"deadline"`
	Fulfilled     bool      `json:"fulfilled"`
	ReputationReq int       `json:"reputation_req"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}
