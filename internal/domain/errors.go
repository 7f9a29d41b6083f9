package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgUsernameTaken   = "username already taken"
	ErrMsgInvalidUsername = "invalid username"

	// Ingredient errors
	ErrMsgInsufficientIngredients = "insufficient ingredients"
	ErrMsgUnknownIngredient       = "unknown ingredient"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgRecipeLocked   = "recipe is locked"

	// Brewing errors
	ErrMsgCauldronNotFound = "cauldron not found"
	ErrMsgBrewInProgress   = "cauldron is already brewing"
	ErrMsgNoActiveBrew     = "cauldron has no active brew"
	ErrMsgBrewNotReady     = "brew is not ready yet"

	// Shop errors
	ErrMsgOrderNotFound         = "order not found"
	ErrMsgOrderAlreadyFulfilled = "order already fulfilled"
	ErrMsgRecipeMismatch        = "potion does not match order requirement"
	ErrMsgNoMatchingPotion      = "no matching potion"
	ErrMsgShopClosed            = "shop is closed"
	ErrMsgInvalidOrderBounds    = "invalid order bounds"

	// Forage errors
	ErrMsgUnknownZone     = "unknown zone"
	ErrMsgNothingToForage = "nothing to forage"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrUsernameTaken   = errors.New(ErrMsgUsernameTaken)
	ErrInvalidUsername = errors.New(ErrMsgInvalidUsername)

	// Ingredient errors
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)
	ErrUnknownIngredient       = errors.New(ErrMsgUnknownIngredient)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeLocked   = errors.New(ErrMsgRecipeLocked)

	// Brewing errors
	ErrCauldronNotFound = errors.New(ErrMsgCauldronNotFound)
	ErrBrewInProgress   = errors.New(ErrMsgBrewInProgress)
	ErrNoActiveBrew     = errors.New(ErrMsgNoActiveBrew)
	ErrBrewNotReady     = errors.New(ErrMsgBrewNotReady)

	// Shop errors
	ErrOrderNotFound         = errors.New(ErrMsgOrderNotFound)
	ErrOrderAlreadyFulfilled = errors.New(ErrMsgOrderAlreadyFulfilled)
	ErrRecipeMismatch        = errors.New(ErrMsgRecipeMismatch)
	ErrNoMatchingPotion      = errors.New(ErrMsgNoMatchingPotion)
	ErrShopClosed            = errors.New(ErrMsgShopClosed)
	ErrInvalidOrderBounds    = errors.New(ErrMsgInvalidOrderBounds)

	// Forage errors
	ErrUnknownZone     = errors.New(ErrMsgUnknownZone)
	ErrNothingToForage = errors.New(ErrMsgNothingToForage)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
