package domain

// PhaseChangedPayload is the event payload for world.phase_changed,
// world.night_began and world.day_advanced events
type PhaseChangedPayload struct {
	Day       int   `json:"day"`
	Week      int   `json:"week"`
	Phase     Phase `json:"phase"`
	Previous  Phase `json:"previous"`
	Timestamp int64 `json:"timestamp"`
}

// PlayerRegisteredPayload is the event payload for player.registered events
type PlayerRegisteredPayload struct {
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// IngredientForagedPayload is the event payload for ingredient.foraged events
type IngredientForagedPayload struct {
	PlayerID  string           `json:"player_id"`
	Zone      Zone             `json:"zone"`
	Gathered  []IngredientType `json:"gathered"`
	Timestamp int64            `json:"timestamp"`
}

// BrewStartedPayload is the event payload for brew.started events
type BrewStartedPayload struct {
	PlayerID   string `json:"player_id"`
	CauldronID string `json:"cauldron_id"`
	RecipeID   string `json:"recipe_id"`
	EndsAt     int64  `json:"ends_at"`
	Timestamp  int64  `json:"timestamp"`
}

// BrewFinishedPayload is the event payload for brew.finished events
type BrewFinishedPayload struct {
	PlayerID   string `json:"player_id"`
	CauldronID string `json:"cauldron_id"`
	PotionID   string `json:"potion_id"`
	RecipeID   string `json:"recipe_id"`
	Quality    int    `json:"quality"`
	GoldEarned int    `json:"gold_earned"`
	Timestamp  int64  `json:"timestamp"`
}

// OrdersGeneratedPayload is the event payload for orders.generated events
type OrdersGeneratedPayload struct {
	PlayerID   string `json:"player_id"`
	Day        int    `json:"day"`
	OrderCount int    `json:"order_count"`
	Timestamp  int64  `json:"timestamp"`
}

// PotionSoldPayload is the event payload for potion.sold events
type PotionSoldPayload struct {
	PlayerID  string  `json:"player_id"`
	OrderID   string  `json:"order_id"`
	PotionID  string  `json:"potion_id"`
	RecipeID  string  `json:"recipe_id"`
	Faction   Faction `json:"faction"`
	Price     int     `json:"price"`
	Timestamp int64   `json:"timestamp"`
}
