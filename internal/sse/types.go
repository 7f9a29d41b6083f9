package sse

import "github.com/osse101/HexBrew_Go/internal/domain"

// WorldPayload is the SSE payload for world clock events. It carries the
// recipe of the new day so clients can redraw without another request.
type WorldPayload struct {
	Day        int          `json:"day"`
	Week       int          `json:"week"`
	Phase      domain.Phase `json:"phase"`
	Previous   domain.Phase `json:"previous"`
	RecipeID   string       `json:"recipe_id"`
	RecipeName string       `json:"recipe_name"`
}

// ConnectedPayload is the payload of the first event a client receives
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	PlayerID string   `json:"player_id,omitempty"`
	Filters  []string `json:"filters,omitempty"`
}
