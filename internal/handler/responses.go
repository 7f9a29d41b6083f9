package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceError, "op", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// errorStatus groups domain errors by the status they map to
var errorStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		domain.ErrPlayerNotFound,
		domain.ErrCauldronNotFound,
		domain.ErrOrderNotFound,
		domain.ErrRecipeNotFound,
	}},
	{http.StatusBadRequest, []error{
		domain.ErrInvalidUsername,
		domain.ErrInvalidInput,
		domain.ErrUnknownZone,
		domain.ErrUnknownIngredient,
		domain.ErrInvalidOrderBounds,
	}},
	{http.StatusForbidden, []error{
		domain.ErrRecipeLocked,
	}},
	{http.StatusConflict, []error{
		domain.ErrUsernameTaken,
		domain.ErrInsufficientIngredients,
		domain.ErrBrewInProgress,
		domain.ErrNoActiveBrew,
		domain.ErrBrewNotReady,
		domain.ErrOrderAlreadyFulfilled,
		domain.ErrRecipeMismatch,
		domain.ErrNoMatchingPotion,
		domain.ErrShopClosed,
		domain.ErrNothingToForage,
	}},
	{http.StatusTooManyRequests, []error{
		domain.ErrOnCooldown,
	}},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message the player can act on. Business rule errors carry their own
// wording ("insufficient ingredients: need 1 more Wyrm Scale"); everything
// else becomes a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, group := range errorStatus {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status, err.Error()
			}
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
