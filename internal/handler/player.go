package handler

import (
	"net/http"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/player"
)

// RegisterPlayerRequest is the body of POST /players
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,max=32,excludesall=\x00\n\r\t"`
}

// RegisterPlayerResponse is returned by POST /players
type RegisterPlayerResponse struct {
	Player  *domain.Player `json:"player"`
	Created bool           `json:"created"`
}

// HandleRegisterPlayer registers a player, or returns the existing one
// @Summary Register player
// @Description Creates a player with starting gold and one cauldron. Registering an existing username returns that player.
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Username"
// @Success 201 {object} RegisterPlayerResponse
// @Success 200 {object} RegisterPlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players [post]
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, created, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "register player", err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
			logger.FromContext(r.Context()).Info("Player registered via API", "player_id", p.ID)
		}
		respondJSON(w, status, RegisterPlayerResponse{Player: p, Created: created})
	}
}

// HandleGetPlayer returns a player by id
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		p, err := svc.GetPlayer(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get player", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetInventory returns gold, ingredient slots and unsold potions
// @Summary Get inventory
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} domain.Inventory
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id}/inventory [get]
func HandleGetInventory(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		inv, err := svc.GetInventory(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, inv)
	}
}
