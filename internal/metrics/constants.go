package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameBrewsStarted       = "hexbrew_brews_started_total"
	MetricNamePotionsBrewed      = "hexbrew_potions_brewed_total"
	MetricNamePotionsSold        = "hexbrew_potions_sold_total"
	MetricNameGoldEarned         = "hexbrew_gold_earned_total"
	MetricNameOrdersGenerated    = "hexbrew_orders_generated_total"
	MetricNameIngredientsForaged = "hexbrew_ingredients_foraged_total"
	MetricNamePlayerActions      = "hexbrew_player_actions_total"
	MetricNamePlayersRegistered  = "hexbrew_players_registered_total"
	MetricNameWorldDay           = "hexbrew_world_day"
	MetricNameWorldPhase         = "hexbrew_world_phase"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextBrewsStarted       = "Total number of brews started"
	HelpTextPotionsBrewed      = "Total number of potions brewed by quality tier"
	HelpTextPotionsSold        = "Total number of potions sold to customers"
	HelpTextGoldEarned         = "Total gold earned from brews and sales"
	HelpTextOrdersGenerated    = "Total number of customer orders generated"
	HelpTextIngredientsForaged = "Total number of ingredients foraged"
	HelpTextPlayerActions      = "Total number of successful player actions by type"
	HelpTextPlayersRegistered  = "Total number of players registered"
	HelpTextWorldDay           = "Current day of the week (1-7)"
	HelpTextWorldPhase         = "1 for the active phase, 0 otherwise"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelRecipe     = "recipe"
	LabelQuality    = "quality"
	LabelFaction    = "faction"
	LabelIngredient = "ingredient"
	LabelZone       = "zone"
	LabelPhase      = "phase"
	LabelSource     = "source"
	LabelAction     = "action"
)

// Label values
const (
	QualityTierHigh = "high"
	QualityTierLow  = "low"
	SourceBrew      = "brew"
	SourceSale      = "sale"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
