// ABOUTME: Tests for the Huma API server setup
// ABOUTME: Verifies routing, CORS, and middleware wiring

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Fatal("expected non-nil API")
	}
	if router == nil {
		t.Fatal("expected non-nil router")
	}
}

func TestOpenAPISpecServed(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for openapi.json, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Error("expected Content-Type header on openapi.json response")
	}
}

func TestCORSHeaders(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/openapi.json", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if allow := rec.Header().Get("Access-Control-Allow-Origin"); allow == "" {
		t.Error("expected Access-Control-Allow-Origin header on preflight response")
	}
}

func TestRateLimitMiddlewareWired(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected second request to be rate limited, got %d", second.Code)
	}
}
