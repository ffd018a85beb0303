// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		h := CORS([]string{"http://localhost:5173"})(inner)

		req := httptest.NewRequest("GET", "/states/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected allowed origin echoed, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Expected credentials allowed for explicit origin, got %q", got)
		}
	})

	t.Run("disallowed origin", func(t *testing.T) {
		h := CORS([]string{"http://localhost:5173"})(inner)

		req := httptest.NewRequest("GET", "/states/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS header for disallowed origin, got %q", got)
		}
	})

	// Browsers send the requested header names lowercased
	preflights := []struct {
		name           string
		requestHeaders string
	}{
		{"authorization", "authorization"},
		{"authorization and content type", "authorization,content-type"},
		{"request id", "x-request-id"},
	}

	for _, tt := range preflights {
		t.Run("preflight "+tt.name, func(t *testing.T) {
			called := false
			h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest("OPTIONS", "/districts/", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", "POST")
			req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if called {
				t.Error("Preflight should not reach the handler")
			}
			if w.Code != http.StatusNoContent && w.Code != http.StatusOK {
				t.Errorf("Expected preflight success, got %d", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Expected wildcard origin, got %q", got)
			}
		})
	}

	t.Run("preflight with unlisted header", func(t *testing.T) {
		h := CORS([]string{"*"})(inner)

		req := httptest.NewRequest("OPTIONS", "/districts/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "x-custom")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS header for unlisted request header, got %q", got)
		}
	})
}
