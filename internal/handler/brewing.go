package handler

import (
	"net/http"

	"github.com/osse101/HexBrew_Go/internal/brewing"
)

// StartBrewRequest is the body of POST /players/{id}/brew.
// Empty fields default to the first cauldron and today's recipe.
type StartBrewRequest struct {
	CauldronID string `json:"cauldron_id" validate:"omitempty,max=50"`
	RecipeID   string `json:"recipe_id" validate:"omitempty,recipeid"`
}

// FinishBrewRequest is the body of POST /players/{id}/brew/finish
type FinishBrewRequest struct {
	CauldronID string `json:"cauldron_id" validate:"omitempty,max=50"`
}

// HandleStartBrew starts brewing in a cauldron
// @Summary Start brewing
// @Description Consumes the recipe's ingredients and starts the brew timer
// @Tags brewing
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body StartBrewRequest false "Cauldron and recipe"
// @Success 201 {object} domain.Cauldron
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{id}/brew [post]
func HandleStartBrew(svc brewing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		var req StartBrewRequest
		if err := decodeOptionalBody(r, w, &req, "Start brew"); err != nil {
			return
		}

		cauldron, err := svc.StartBrew(r.Context(), id, req.CauldronID, req.RecipeID)
		if err != nil {
			respondServiceError(w, r, "start brew", err)
			return
		}
		respondJSON(w, http.StatusCreated, cauldron)
	}
}

// HandleFinishBrew collects a finished brew
// @Summary Finish brewing
// @Description Collects the potion once the brew window has closed and credits its gold
// @Tags brewing
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param request body FinishBrewRequest false "Cauldron"
// @Success 200 {object} brewing.BrewResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{id}/brew/finish [post]
func HandleFinishBrew(svc brewing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		var req FinishBrewRequest
		if err := decodeOptionalBody(r, w, &req, "Finish brew"); err != nil {
			return
		}

		res, err := svc.FinishBrew(r.Context(), id, req.CauldronID)
		if err != nil {
			respondServiceError(w, r, "finish brew", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetCauldrons lists a player's cauldrons
// @Summary List cauldrons
// @Tags brewing
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} domain.Cauldron
// @Router /api/v1/players/{id}/cauldrons [get]
func HandleGetCauldrons(svc brewing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		cauldrons, err := svc.GetCauldrons(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get cauldrons", err)
			return
		}
		respondJSON(w, http.StatusOK, cauldrons)
	}
}
