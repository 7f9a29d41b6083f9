package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/HexBrew_Go/internal/cycle"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/recipe"
)

// WorldReader is the read side of the world clock
type WorldReader interface {
	Snapshot() cycle.Snapshot
	CurrentDay() int
}

// RecipeView is a recipe plus whether it can be brewed today
type RecipeView struct {
	domain.Recipe
	Day      int  `json:"day"`
	Unlocked bool `json:"unlocked"`
	Today    bool `json:"today"`
}

func recipeView(r domain.Recipe, today int) RecipeView {
	day, _ := recipe.DayOf(r.ID)
	return RecipeView{
		Recipe:   r,
		Day:      day,
		Unlocked: recipe.IsUnlocked(r.ID, today),
		Today:    recipe.ForDay(today).ID == r.ID,
	}
}

// HandleGetWorld returns the world clock
// @Summary World clock
// @Description Day, week, phase and time left in the phase
// @Tags world
// @Produce json
// @Success 200 {object} cycle.Snapshot
// @Router /api/v1/world [get]
func HandleGetWorld(world WorldReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, world.Snapshot())
	}
}

// HandleGetRecipes lists the weekly recipe table
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} RecipeView
// @Router /api/v1/recipes [get]
func HandleGetRecipes(world WorldReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := world.CurrentDay()
		all := recipe.All()
		views := make([]RecipeView, len(all))
		for i, rec := range all {
			views[i] = recipeView(rec, today)
		}
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetTodayRecipe returns the recipe of the current day
// @Summary Today's recipe
// @Tags recipes
// @Produce json
// @Success 200 {object} RecipeView
// @Router /api/v1/recipes/today [get]
func HandleGetTodayRecipe(world WorldReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := world.CurrentDay()
		respondJSON(w, http.StatusOK, recipeView(recipe.ForDay(today), today))
	}
}

// HandleGetRecipeForDay returns the recipe of any day. Days wrap weekly.
// @Summary Recipe for a day
// @Tags recipes
// @Produce json
// @Param day path int true "Day number"
// @Success 200 {object} RecipeView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes/day/{day} [get]
func HandleGetRecipeForDay(world WorldReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetPathParam(r, w, PathParamDay)
		if !ok {
			return
		}
		day, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDay)
			return
		}
		respondJSON(w, http.StatusOK, recipeView(recipe.ForDay(day), world.CurrentDay()))
	}
}
