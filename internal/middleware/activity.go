package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/metrics"
)

// PlayerScope copies the {id} route parameter into the request context so
// every log line written while serving the request carries player_id.
// It must be mounted inside a route that declares {id}.
func PlayerScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, PathParamPlayerID); id != "" {
			r = r.WithContext(logger.WithPlayerID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// ActivityTracker counts successful player actions
type ActivityTracker struct {
	counter func(action string)
}

// NewActivityTracker creates a tracker that reports to the Prometheus registry
func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		counter: func(action string) {
			metrics.PlayerActions.WithLabelValues(action).Inc()
		},
	}
}

// Track wraps a handler and records action once the handler has answered
// with a non-error status
func (a *ActivityTracker) Track(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log := logger.FromContext(r.Context())
			if rec.status >= http.StatusBadRequest {
				log.Debug(LogMsgActionFailed, "action", action, "status", rec.status)
				return
			}
			a.counter(action)
			log.Debug(LogMsgActionRecorded, "action", action)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}
