package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HexBrew_Go/internal/clock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newDetector() (*SuspiciousActivityDetector, *clock.SimulatedClock) {
	clk := clock.NewSimulated(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewSuspiciousActivityDetector(clk), clk
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"
	detector, _ := newDetector()
	handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

	tests := []struct {
		name           string
		path           string
		headerKey      string
		expectedStatus int
	}{
		{"Valid API Key", "/api/v1/world", apiKey, http.StatusOK},
		{"Invalid API Key", "/api/v1/world", "wrong-key", http.StatusUnauthorized},
		{"Missing API Key", "/api/v1/world", "", http.StatusUnauthorized},
		{"Public Path - Healthz", "/healthz", "", http.StatusOK},
		{"Public Path - Metrics", "/metrics", "", http.StatusOK},
		{"Public Path - Swagger", "/swagger/index.html", "", http.StatusOK},
		{"Query key on stream", StreamPath + "?api_key=" + apiKey, "", http.StatusOK},
		{"Query key elsewhere ignored", "/api/v1/world?api_key=" + apiKey, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.headerKey != "" {
				req.Header.Set(HeaderAPIKey, tt.headerKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	detector, _ := newDetector()
	handler := AuthMiddleware("", nil, detector)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/world", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector, _ := newDetector()
	handler := AuthMiddleware("secret", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector, clk := newDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < MaxRequestsPerWindow; i++ {
		if code := send(); code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, code)
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, send())

	detector.mu.Lock()
	assert.Equal(t, MaxRequestsPerWindow+1, detector.requestCountByIP[ip])
	detector.mu.Unlock()

	clk.Advance(DetectorWindow + time.Second)
	assert.Equal(t, http.StatusOK, send(), "a new window resets the budget")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"untrusted proxy ignored", "203.0.113.5:4000", "1.2.3.4", nil, "203.0.113.5"},
		{"trusted proxy", "10.0.0.1:4000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expected := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range expected {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789abcdef"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
