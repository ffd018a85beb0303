// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Authentication

Protect a route with a bearer token check:

	mux.HandleFunc("GET /states/{$}", middleware.RequireAuth(tokens, stateHandler.List))

A missing or invalid token gets 401 with the body "Invalid JWT Token". The
scheme word in the Authorization header is not checked. On success the
username is available through auth.UsernameFromContext.

# Request Logging

The router wraps the mux in a zerolog chain:

	handler := middleware.Chain(metrics.Instrument(middleware.Recover(mux)),
		middleware.WithLogger(log),
		middleware.RequestID,
		middleware.AccessLog,
	)

WithLogger puts a per-request logger in the context (read it with
zerolog.Ctx or hlog.FromRequest). RequestID adds X-Request-ID to the
response and the logger. AccessLog writes one line per request with
method, path, status, size and duration_ms. Recover sits inside AccessLog
and Instrument so a panic is still logged and counted as a 500.

# CORS Middleware

	handler = middleware.CORS(cfg.AllowedOrigins())(handler)

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers Content-Type,
Authorization and X-Request-ID.

# Metrics

	metrics := middleware.NewMetrics()
	handler := metrics.Instrument(mux)
	mux.Handle("GET /metrics", metrics.Handler())

Counts requests by method, route pattern and status and records latency.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusOK, "District Removed")
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user")

Error bodies are plain text.

Parse JSON request bodies:

	var req models.DistrictRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
