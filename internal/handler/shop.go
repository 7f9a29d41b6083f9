package handler

import (
	"net/http"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/shop"
)

// Order status filters for GET /players/{id}/orders
const (
	OrderStatusAll       = "all"
	OrderStatusOpen      = "open"
	OrderStatusFulfilled = "fulfilled"
)

// EarningsResponse is returned by GET /players/{id}/earnings
type EarningsResponse struct {
	PlayerID string `json:"player_id"`
	Earnings int    `json:"earnings"`
}

// HandleGetOrders lists a player's customer orders
// @Summary List orders
// @Description Orders newest batch first. status filters by open or fulfilled.
// @Tags shop
// @Produce json
// @Param id path string true "Player ID"
// @Param status query string false "all, open or fulfilled" default(all)
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{id}/orders [get]
func HandleGetOrders(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}

		status := GetOptionalQueryParam(r, "status", OrderStatusAll)
		if status != OrderStatusAll && status != OrderStatusOpen && status != OrderStatusFulfilled {
			respondError(w, http.StatusBadRequest, "status must be all, open or fulfilled")
			return
		}

		orders, err := svc.GetOrders(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get orders", err)
			return
		}
		respondJSON(w, http.StatusOK, filterOrders(orders, status))
	}
}

func filterOrders(orders []domain.Order, status string) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		switch {
		case status == OrderStatusOpen && o.Fulfilled:
			continue
		case status == OrderStatusFulfilled && !o.Fulfilled:
			continue
		}
		out = append(out, o)
	}
	return out
}

// HandleSellPotion sells a matching potion against an order
// @Summary Sell a potion
// @Description Fulfils the order with the player's first matching potion. The shop only trades at night.
// @Tags shop
// @Produce json
// @Param id path string true "Player ID"
// @Param orderID path string true "Order ID"
// @Success 200 {object} shop.SaleResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{id}/orders/{orderID}/sell [post]
func HandleSellPotion(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		orderID, ok := GetPathParam(r, w, PathParamOrderID)
		if !ok {
			return
		}

		sale, err := svc.SellPotion(r.Context(), id, orderID)
		if err != nil {
			respondServiceError(w, r, "sell potion", err)
			return
		}
		respondJSON(w, http.StatusOK, sale)
	}
}

// HandleGetEarnings returns the total of fulfilled orders
// @Summary Shop earnings
// @Tags shop
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} EarningsResponse
// @Router /api/v1/players/{id}/earnings [get]
func HandleGetEarnings(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamPlayerID)
		if !ok {
			return
		}
		total, err := svc.GetEarnings(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get earnings", err)
			return
		}
		respondJSON(w, http.StatusOK, EarningsResponse{PlayerID: id, Earnings: total})
	}
}
