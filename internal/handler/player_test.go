package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/mocks"
)

func TestHandleRegisterPlayer(t *testing.T) {
	alice := &domain.Player{ID: "p-1", Username: "alice", Gold: 100}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Created",
			requestBody: RegisterPlayerRequest{Username: "alice"},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "alice").Return(alice, true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"created":true`,
		},
		{
			name:        "Existing player",
			requestBody: RegisterPlayerRequest{Username: "alice"},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "alice").Return(alice, false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"created":false`,
		},
		{
			name:           "Missing username",
			requestBody:    RegisterPlayerRequest{},
			setupMocks:     func(m *mocks.MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:           "Invalid JSON",
			requestBody:    "{not json",
			setupMocks:     func(m *mocks.MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:        "Service rejects username",
			requestBody: RegisterPlayerRequest{Username: "   "},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "   ").Return(nil, false, domain.ErrInvalidUsername)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgInvalidUsername,
		},
		{
			name:        "Storage failure",
			requestBody: RegisterPlayerRequest{Username: "alice"},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "alice").Return(nil, false, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPlayerService(t)
			tt.setupMocks(svc)

			w := serve(t, http.MethodPost, "/players", "/players", HandleRegisterPlayer(svc), tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestHandleGetPlayer(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("GetPlayer", mock.Anything, "p-1").Return(&domain.Player{ID: "p-1", Username: "alice", Gold: 120}, nil)

		w := serve(t, http.MethodGet, "/players/{id}", "/players/p-1", HandleGetPlayer(svc), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.Player
		decodeBody(t, w, &got)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, 120, got.Gold)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("GetPlayer", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

		w := serve(t, http.MethodGet, "/players/{id}", "/players/ghost", HandleGetPlayer(svc), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetInventory(t *testing.T) {
	svc := mocks.NewMockPlayerService(t)
	inv := &domain.Inventory{
		Gold: 100,
		Ingredients: []domain.IngredientItem{
			{IngredientType: domain.IngredientMandrakeRoot, Quantity: 2},
		},
		Potions: []domain.Potion{},
	}
	svc.On("GetInventory", mock.Anything, "p-1").Return(inv, nil)

	w := serve(t, http.MethodGet, "/players/{id}/inventory", "/players/p-1/inventory", HandleGetInventory(svc), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.Inventory
	decodeBody(t, w, &got)
	assert.Equal(t, 100, got.Gold)
	assert.Len(t, got.Ingredients, 1)
}
