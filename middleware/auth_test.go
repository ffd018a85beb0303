// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/covid19-portal/auth"
)

func newTestTokens(t *testing.T, secret string) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(secret, 0)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestRequireAuth(t *testing.T) {
	tokens := newTestTokens(t, "test-secret")
	valid, _ := tokens.Issue("christopher_phillips")
	foreign, _ := newTestTokens(t, "other-secret").Issue("christopher_phillips")

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"valid bearer", "Bearer " + valid, http.StatusOK, true},
		{"scheme not checked", "Token " + valid, http.StatusOK, true},
		{"no scheme", valid, http.StatusUnauthorized, false},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, false},
		{"malformed", "Bearer not.a.token", http.StatusUnauthorized, false},
		{"empty token", "Bearer ", http.StatusUnauthorized, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			var gotUser string
			h := RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUser = auth.UsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/states/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if called != tc.wantCalled {
				t.Errorf("Expected handler called = %v, got %v", tc.wantCalled, called)
			}
			if tc.wantCalled && gotUser != "christopher_phillips" {
				t.Errorf("Expected username in context, got %q", gotUser)
			}
			if !tc.wantCalled && w.Body.String() != "Invalid JWT Token" {
				t.Errorf("Expected body 'Invalid JWT Token', got '%s'", w.Body.String())
			}
		})
	}
}
