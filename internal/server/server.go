package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/HexBrew_Go/docs" // registers the Swagger spec
	"github.com/osse101/HexBrew_Go/internal/brewing"
	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/forage"
	"github.com/osse101/HexBrew_Go/internal/handler"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/metrics"
	"github.com/osse101/HexBrew_Go/internal/middleware"
	"github.com/osse101/HexBrew_Go/internal/player"
	"github.com/osse101/HexBrew_Go/internal/shop"
	"github.com/osse101/HexBrew_Go/internal/sse"
)

// Options configures the HTTP front door
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Services are the game features exposed over HTTP
type Services struct {
	// DB is pinged by /readyz. Nil means in-memory storage.
	DB      handler.Pinger
	World   handler.WorldReader
	Player  player.Service
	Forage  forage.Service
	Brewing brewing.Service
	Shop    shop.Service
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
			// No WriteTimeout: /api/v1/events streams for the life of the client
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(clock.New())
	tracker := middleware.NewActivityTracker()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Unversioned public routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route(APIPrefix, func(r chi.Router) {
		r.With(tracker.Track(middleware.ActionRegister)).
			Post("/players", handler.HandleRegisterPlayer(svc.Player))

		r.Route("/players/{id}", func(r chi.Router) {
			r.Use(middleware.PlayerScope)

			r.Get("/", handler.HandleGetPlayer(svc.Player))
			r.Get("/inventory", handler.HandleGetInventory(svc.Player))
			r.With(tracker.Track(middleware.ActionForage)).
				Post("/forage", handler.HandleForage(svc.Forage))

			r.Get("/cauldrons", handler.HandleGetCauldrons(svc.Brewing))
			r.With(tracker.Track(middleware.ActionBrew)).
				Post("/brew", handler.HandleStartBrew(svc.Brewing))
			r.With(tracker.Track(middleware.ActionCollect)).
				Post("/brew/finish", handler.HandleFinishBrew(svc.Brewing))

			r.Get("/orders", handler.HandleGetOrders(svc.Shop))
			r.With(tracker.Track(middleware.ActionSell)).
				Post("/orders/{orderID}/sell", handler.HandleSellPotion(svc.Shop))
			r.Get("/earnings", handler.HandleGetEarnings(svc.Shop))
		})

		r.Get("/world", handler.HandleGetWorld(svc.World))

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleGetRecipes(svc.World))
			r.Get("/today", handler.HandleGetTodayRecipe(svc.World))
			r.Get("/day/{day}", handler.HandleGetRecipeForDay(svc.World))
		})

		if svc.Hub != nil {
			r.Get("/events", sse.Handler(svc.Hub))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the SSE handler stream through the logging wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Honour an upstream request id so logs join across the Discord bot and the API
		requestID := r.Header.Get(logger.HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(logger.HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
