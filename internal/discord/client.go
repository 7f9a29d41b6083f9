package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/HexBrew_Go/internal/brewing"
	"github.com/osse101/HexBrew_Go/internal/cycle"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/forage"
	"github.com/osse101/HexBrew_Go/internal/handler"
	"github.com/osse101/HexBrew_Go/internal/shop"
)

// APIClient handles communication with the HexBrew API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: apiRequestTimeout,
		},
		APIKey:     apiKey,
		maxRetries: apiMaxRetries,
		retryDelay: apiRetryDelay,
	}
}

// APIError is a non-2xx response carrying the API's error message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// responses with exponential backoff
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + apiPrefix + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call sends the request and decodes a 2xx body into out. Error responses
// become *APIError.
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var errResp handler.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("API returned status: %d", resp.StatusCode)}
}

func playerPath(playerID, suffix string) string {
	return "/players/" + url.PathEscape(playerID) + suffix
}

// RegisterPlayer registers username or returns the existing player
func (c *APIClient) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	var resp handler.RegisterPlayerResponse
	if err := c.call(ctx, http.MethodPost, "/players", handler.RegisterPlayerRequest{Username: username}, &resp); err != nil {
		return nil, err
	}
	if resp.Player == nil {
		return nil, errors.New("register response missing player")
	}
	return resp.Player, nil
}

// GetInventory retrieves the player's gold, ingredients and potions
func (c *APIClient) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	var inv domain.Inventory
	if err := c.call(ctx, http.MethodGet, playerPath(playerID, "/inventory"), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Forage gathers ingredients in zone
func (c *APIClient) Forage(ctx context.Context, playerID, zone string) (*forage.Result, error) {
	var res forage.Result
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "/forage"), handler.ForageRequest{Zone: zone}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// StartBrew starts a brew in the player's first cauldron. An empty recipeID
// brews today's recipe.
func (c *APIClient) StartBrew(ctx context.Context, playerID, recipeID string) (*domain.Cauldron, error) {
	var cauldron domain.Cauldron
	req := handler.StartBrewRequest{RecipeID: recipeID}
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "/brew"), req, &cauldron); err != nil {
		return nil, err
	}
	return &cauldron, nil
}

// FinishBrew collects the brew in the player's first cauldron
func (c *APIClient) FinishBrew(ctx context.Context, playerID string) (*brewing.BrewResult, error) {
	var res brewing.BrewResult
	if err := c.call(ctx, http.MethodPost, playerPath(playerID, "/brew/finish"), handler.FinishBrewRequest{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetOrders lists the player's orders filtered by status (all, open, fulfilled)
func (c *APIClient) GetOrders(ctx context.Context, playerID, status string) ([]domain.Order, error) {
	path := playerPath(playerID, "/orders")
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var orders []domain.Order
	if err := c.call(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SellPotion fulfils an order with a matching potion
func (c *APIClient) SellPotion(ctx context.Context, playerID, orderID string) (*shop.SaleResult, error) {
	var sale shop.SaleResult
	path := playerPath(playerID, "/orders/"+url.PathEscape(orderID)+"/sell")
	if err := c.call(ctx, http.MethodPost, path, nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// GetWorld returns the world clock snapshot
func (c *APIClient) GetWorld(ctx context.Context) (*cycle.Snapshot, error) {
	var snap cycle.Snapshot
	if err := c.call(ctx, http.MethodGet, "/world", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetTodayRecipe returns the recipe of the current day
func (c *APIClient) GetTodayRecipe(ctx context.Context) (*handler.RecipeView, error) {
	var view handler.RecipeView
	if err := c.call(ctx, http.MethodGet, "/recipes/today", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetRecipeForDay returns the recipe of a day of the week
func (c *APIClient) GetRecipeForDay(ctx context.Context, day int) (*handler.RecipeView, error) {
	var view handler.RecipeView
	if err := c.call(ctx, http.MethodGet, "/recipes/day/"+strconv.Itoa(day), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Ping reports whether the API answers its liveness probe
func (c *APIClient) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
