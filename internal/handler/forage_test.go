package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HexBrew_Go/internal/cooldown"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/forage"
	"github.com/osse101/HexBrew_Go/mocks"
)

func TestHandleForage(t *testing.T) {
	const path = "/players/p-1/forage"
	const pattern = "/players/{id}/forage"

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockForageService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: ForageRequest{Zone: "forest"},
			setupMocks: func(m *mocks.MockForageService) {
				m.On("Forage", mock.Anything, "p-1", "forest").Return(&forage.Result{
					Zone:     domain.ZoneForest,
					Gathered: []domain.IngredientType{domain.IngredientMandrakeRoot},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"zone":"Forest"`,
		},
		{
			name:        "On cooldown",
			requestBody: ForageRequest{Zone: "forest"},
			setupMocks: func(m *mocks.MockForageService) {
				m.On("Forage", mock.Anything, "p-1", "forest").
					Return(nil, cooldown.ErrOnCooldown{Action: cooldown.ActionKey(domain.ActionForage, string(domain.ZoneForest)), Remaining: 90 * time.Second})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   "You can forage in Forest again in 1m 30s",
		},
		{
			name:        "Unknown zone",
			requestBody: ForageRequest{Zone: "lava lake"},
			setupMocks: func(m *mocks.MockForageService) {
				m.On("Forage", mock.Anything, "p-1", "lava lake").
					Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownZone, "lava lake"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgUnknownZone,
		},
		{
			name:        "Nothing to forage",
			requestBody: ForageRequest{Zone: "ruins"},
			setupMocks: func(m *mocks.MockForageService) {
				m.On("Forage", mock.Anything, "p-1", "ruins").Return(nil, domain.ErrNothingToForage)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Missing zone",
			requestBody:    ForageRequest{},
			setupMocks:     func(m *mocks.MockForageService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"zone":"This field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockForageService(t)
			tt.setupMocks(svc)

			w := serve(t, http.MethodPost, pattern, path, HandleForage(svc), tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
