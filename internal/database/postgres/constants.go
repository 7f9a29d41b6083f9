package postgres

// Error messages
const (
	ErrMsgBeginTx = "failed to begin transaction"
)

// Bulk writes go through COPY, which sqlc does not model for these tables
const (
	tableIngredients = "player_ingredients"
	tableOrders      = "orders"
)

var (
	ingredientCopyColumns = []string{"player_id", "slot", "ingredient_type", "quantity"}
	orderCopyColumns      = []string{"order_id", "player_id", "seq", "buyer_id", "recipe_id", "recipe_name",
		"recipe_day", "faction", "price", "deadline", "fulfilled", "reputation_req", "created_at"}
)
