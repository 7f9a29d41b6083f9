package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/cycle"
	"github.com/osse101/HexBrew_Go/internal/domain"
)

type stubWorld struct {
	snapshot cycle.Snapshot
}

func (s stubWorld) Snapshot() cycle.Snapshot { return s.snapshot }
func (s stubWorld) CurrentDay() int          { return s.snapshot.Day }

func worldOnDay(day int) stubWorld {
	return stubWorld{snapshot: cycle.Snapshot{
		Day:      day,
		Week:     (day-1)/7 + 1,
		Phase:    domain.PhaseNight,
		ShopOpen: true,
	}}
}

func TestHandleGetWorld(t *testing.T) {
	w := serve(t, http.MethodGet, "/world", "/world", HandleGetWorld(worldOnDay(9)), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got cycle.Snapshot
	decodeBody(t, w, &got)
	assert.Equal(t, 9, got.Day)
	assert.Equal(t, 2, got.Week)
	assert.True(t, got.ShopOpen)
}

func TestHandleGetRecipes(t *testing.T) {
	w := serve(t, http.MethodGet, "/recipes", "/recipes", HandleGetRecipes(worldOnDay(3)), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []RecipeView
	decodeBody(t, w, &got)
	require.Len(t, got, 7)

	for i, r := range got {
		assert.Equal(t, i+1, r.Day)
		assert.Equal(t, r.Day <= 3, r.Unlocked, r.ID)
		assert.Equal(t, r.Day == 3, r.Today, r.ID)
	}
}

func TestHandleGetTodayRecipe(t *testing.T) {
	w := serve(t, http.MethodGet, "/recipes/today", "/recipes/today", HandleGetTodayRecipe(worldOnDay(2)), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got RecipeView
	decodeBody(t, w, &got)
	assert.Equal(t, "recipe_day_2", got.ID)
	assert.True(t, got.Today)
	assert.True(t, got.Unlocked)
}

func TestHandleGetRecipeForDay(t *testing.T) {
	tests := []struct {
		name           string
		day            string
		expectedStatus int
		expectedID     string
	}{
		{"First day", "1", http.StatusOK, "recipe_day_1"},
		{"Wraps weekly", "8", http.StatusOK, "recipe_day_1"},
		{"Wraps backwards", "0", http.StatusOK, "recipe_day_7"},
		{"Not a number", "tuesday", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodGet, "/recipes/day/{day}", "/recipes/day/"+tt.day, HandleGetRecipeForDay(worldOnDay(1)), nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedID == "" {
				assert.Contains(t, w.Body.String(), ErrMsgInvalidDay)
				return
			}
			var got RecipeView
			decodeBody(t, w, &got)
			assert.Equal(t, tt.expectedID, got.ID)
		})
	}
}
