// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/cliparse"
	"github.com/danielhkuo/covid19-portal/handlers"
	"github.com/danielhkuo/covid19-portal/middleware"
	"github.com/danielhkuo/covid19-portal/store"
)

// NewRouter registers every route and returns the mux wrapped in the
// logging, CORS and metrics middleware.
func NewRouter(s *store.Store, tokens *auth.TokenManager, cfg cliparse.Config, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	metrics := middleware.NewMetrics()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s, tokens)
	stateHandler := handlers.NewStateHandler(s)
	districtHandler := handlers.NewDistrictHandler(s)
	healthHandler := handlers.NewHealthHandler(s)

	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(tokens, h)
	}

	// Health and metrics (public)
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	// Login (public)
	handle(mux, "POST /login", authHandler.Login)

	// States
	handle(mux, "GET /states/", protected(stateHandler.List))
	handle(mux, "GET /states/{stateId}/", protected(stateHandler.Get))
	handle(mux, "GET /states/{stateId}/stats/", protected(stateHandler.Stats))

	// Districts
	handle(mux, "POST /districts/", protected(districtHandler.Create))
	handle(mux, "GET /districts/{districtId}/", protected(districtHandler.Get))
	handle(mux, "PUT /districts/{districtId}/", protected(districtHandler.Update))
	handle(mux, "DELETE /districts/{districtId}/", protected(districtHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.TextResponse(w, http.StatusOK, "covid19-portal API v1")
	})

	// Recover sits inside Instrument so panics are counted as 500s
	return middleware.Chain(metrics.Instrument(middleware.Recover(mux)),
		middleware.WithLogger(log),
		middleware.RequestID,
		middleware.AccessLog,
		middleware.CORS(cfg.AllowedOrigins()),
	)
}

// handle registers pattern for an exact match both with and without the
// trailing slash, so /states/ and /states reach the same handler.
func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	trimmed := strings.TrimSuffix(path, "/")

	mux.HandleFunc(method+" "+trimmed+"/{$}", h)
	if trimmed != "" {
		mux.HandleFunc(method+" "+trimmed, h)
	}
}
