package handler

import (
	"net/http"

	"github.com/osse101/HexBrew_Go/internal/forage"
)

// ForageRequest is the body of POST /players/{id}/forage
type ForageRequest struct {
	Zone string `json:"zone" validate:"required,max=50"`
}

// HandleForage gathers ingredients in a zone
// @Summary Forage a zone
// @Description Gathers one of every unlocked ingredient that grows in the zone. Each zone has its own cooldown.
// @Tags foraging
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body ForageRequest true "Zone"
// @Success 200 {object} forage.Result
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/players/{id}/forage [post]
func HandleForage(svc forage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		var req ForageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Forage"); err != nil {
			return
		}

		res, err := svc.Forage(r.Context(), id, req.Zone)
		if err != nil {
			respondServiceError(w, r, "forage", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
