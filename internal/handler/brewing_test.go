package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HexBrew_Go/internal/brewing"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/mocks"
)

func TestHandleStartBrew(t *testing.T) {
	const pattern = "/players/{id}/brew"
	const path = "/players/p-1/brew"

	ends := time.Date(2026, 1, 1, 12, 0, 30, 0, time.UTC)
	brewingCauldron := &domain.Cauldron{
		ID:         domain.DefaultCauldronID,
		Owner:      "p-1",
		Quality:    50,
		RecipeID:   "recipe_day_1",
		BrewEndsAt: &ends,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockBrewingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Defaults with empty body",
			requestBody: nil,
			setupMocks: func(m *mocks.MockBrewingService) {
				m.On("StartBrew", mock.Anything, "p-1", "", "").Return(brewingCauldron, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"recipe_id":"recipe_day_1"`,
		},
		{
			name:        "Explicit recipe",
			requestBody: StartBrewRequest{CauldronID: "cauldron_1", RecipeID: "recipe_day_1"},
			setupMocks: func(m *mocks.MockBrewingService) {
				m.On("StartBrew", mock.Anything, "p-1", "cauldron_1", "recipe_day_1").Return(brewingCauldron, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Unknown recipe rejected by validation",
			requestBody:    StartBrewRequest{RecipeID: "recipe_day_99"},
			setupMocks:     func(m *mocks.MockBrewingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Unknown recipe",
		},
		{
			name:        "Locked recipe",
			requestBody: StartBrewRequest{RecipeID: "recipe_day_7"},
			setupMocks: func(m *mocks.MockBrewingService) {
				m.On("StartBrew", mock.Anything, "p-1", "", "recipe_day_7").
					Return(nil, fmt.Errorf("%w: recipe_day_7 unlocks on day 7", domain.ErrRecipeLocked))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "unlocks on day 7",
		},
		{
			name:        "Insufficient ingredients",
			requestBody: nil,
			setupMocks: func(m *mocks.MockBrewingService) {
				m.On("StartBrew", mock.Anything, "p-1", "", "").
					Return(nil, fmt.Errorf("%w: need 1 more MandrakeRoot", domain.ErrInsufficientIngredients))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "need 1 more MandrakeRoot",
		},
		{
			name:        "Cauldron busy",
			requestBody: nil,
			setupMocks: func(m *mocks.MockBrewingService) {
				m.On("StartBrew", mock.Anything, "p-1", "", "").Return(nil, domain.ErrBrewInProgress)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBrewingService(t)
			tt.setupMocks(svc)

			w := serve(t, http.MethodPost, pattern, path, HandleStartBrew(svc), tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleFinishBrew(t *testing.T) {
	const pattern = "/players/{id}/brew/finish"
	const path = "/players/p-1/brew/finish"

	t.Run("Collects potion", func(t *testing.T) {
		svc := mocks.NewMockBrewingService(t)
		svc.On("FinishBrew", mock.Anything, "p-1", "").Return(&brewing.BrewResult{
			Potion:     domain.Potion{ID: "potion-1", RecipeID: "recipe_day_1", Quality: 80},
			GoldEarned: 40,
		}, nil)

		w := serve(t, http.MethodPost, pattern, path, HandleFinishBrew(svc), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var got brewing.BrewResult
		decodeBody(t, w, &got)
		assert.Equal(t, "potion-1", got.Potion.ID)
		assert.Equal(t, 40, got.GoldEarned)
	})

	t.Run("Not ready", func(t *testing.T) {
		svc := mocks.NewMockBrewingService(t)
		svc.On("FinishBrew", mock.Anything, "p-1", "cauldron_1").Return(nil, domain.ErrBrewNotReady)

		w := serve(t, http.MethodPost, pattern, path, HandleFinishBrew(svc), FinishBrewRequest{CauldronID: "cauldron_1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgBrewNotReady)
	})

	t.Run("Unknown cauldron", func(t *testing.T) {
		svc := mocks.NewMockBrewingService(t)
		svc.On("FinishBrew", mock.Anything, "p-1", "cauldron_9").Return(nil, domain.ErrCauldronNotFound)

		w := serve(t, http.MethodPost, pattern, path, HandleFinishBrew(svc), FinishBrewRequest{CauldronID: "cauldron_9"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetCauldrons(t *testing.T) {
	svc := mocks.NewMockBrewingService(t)
	svc.On("GetCauldrons", mock.Anything, "p-1").Return([]domain.Cauldron{
		{ID: domain.DefaultCauldronID, Owner: "p-1", Quality: 50},
	}, nil)

	w := serve(t, http.MethodGet, "/players/{id}/cauldrons", "/players/p-1/cauldrons", HandleGetCauldrons(svc), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.Cauldron
	decodeBody(t, w, &got)
	assert.Len(t, got, 1)
	assert.False(t, got[0].IsBrewing())
}
