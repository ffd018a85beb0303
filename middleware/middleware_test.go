// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/covid19-portal/models"
)

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "login response",
			statusCode: http.StatusOK,
			data:       models.LoginResponse{JWTToken: "abc.def.ghi"},
			expected:   `{"jwtToken":"abc.def.ghi"}`,
		},
		{
			name:       "state response",
			statusCode: http.StatusOK,
			data:       models.State{StateID: 1, StateName: "Kerala", Population: 33406061},
			expected:   `{"stateId":1,"stateName":"Kerala","population":33406061}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Check body (trim newline added by Encode)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestTextResponse(t *testing.T) {
	w := httptest.NewRecorder()

	TextResponse(w, http.StatusOK, models.MsgDistrictRemoved)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Expected text/plain Content-Type, got '%s'", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "District Removed" {
		t.Errorf("Expected body 'District Removed', got '%s'", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
		expected   string
	}{
		{"invalid user", http.StatusBadRequest, "Invalid user", "Invalid user"},
		{"invalid token", http.StatusUnauthorized, MsgInvalidToken, "Invalid JWT Token"},
		{"not found", http.StatusNotFound, "District not found", "District not found"},
		{"default message", http.StatusInternalServerError, "", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
				t.Errorf("Expected text/plain Content-Type, got '%s'", w.Header().Get("Content-Type"))
			}
			if w.Body.String() != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, w.Body.String())
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body := `{"districtName":"Haveri","stateId":36,"cases":2816,"cured":2424,"active":172,"deaths":220}`
		req := httptest.NewRequest("POST", "/districts/", bytes.NewBufferString(body))

		var parsed models.DistrictRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed.DistrictName != "Haveri" || parsed.StateID != 36 || parsed.Deaths != 220 {
			t.Errorf("Unexpected parse result: %+v", parsed)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/districts/", bytes.NewBufferString("{not json"))

		var parsed models.DistrictRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/districts/", bytes.NewBufferString(`{"cases":"many"}`))

		var parsed models.DistrictRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for string counter")
		}
	})

	t.Run("body closed", func(t *testing.T) {
		body := &closeTracker{Reader: strings.NewReader(`{}`)}
		req := httptest.NewRequest("POST", "/login", body)

		var parsed models.LoginRequest
		ParseJSONBody(req, &parsed)
		if !body.closed {
			t.Error("Expected request body to be closed")
		}
	})
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if strings.Join(order, ",") != "first,second,handler" {
		t.Errorf("Unexpected order: %v", order)
	}
}
