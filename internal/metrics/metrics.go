package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	BrewsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBrewsStarted,
			Help: HelpTextBrewsStarted,
		},
		[]string{LabelRecipe},
	)

	PotionsBrewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotionsBrewed,
			Help: HelpTextPotionsBrewed,
		},
		[]string{LabelRecipe, LabelQuality},
	)

	PotionsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotionsSold,
			Help: HelpTextPotionsSold,
		},
		[]string{LabelRecipe, LabelFaction},
	)

	GoldEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
		[]string{LabelSource},
	)

	OrdersGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOrdersGenerated,
			Help: HelpTextOrdersGenerated,
		},
	)

	IngredientsForaged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngredientsForaged,
			Help: HelpTextIngredientsForaged,
		},
		[]string{LabelZone, LabelIngredient},
	)

	PlayerActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlayerActions,
			Help: HelpTextPlayerActions,
		},
		[]string{LabelAction},
	)

	PlayersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
	)

	WorldDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorldDay,
			Help: HelpTextWorldDay,
		},
	)

	WorldPhase = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameWorldPhase,
			Help: HelpTextWorldPhase,
		},
		[]string{LabelPhase},
	)
)
