// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the portal API.

# Route Definitions

Routes use Go 1.22+ method and wildcard patterns. Every API path matches
both with and without its trailing slash.

Authentication:

	POST /login                        → AuthHandler.Login

States (bearer token required):

	GET /states/                       → StateHandler.List
	GET /states/{stateId}/             → StateHandler.Get
	GET /states/{stateId}/stats/       → StateHandler.Stats

Districts (bearer token required):

	POST   /districts/                 → DistrictHandler.Create
	GET    /districts/{districtId}/    → DistrictHandler.Get
	PUT    /districts/{districtId}/    → DistrictHandler.Update
	DELETE /districts/{districtId}/    → DistrictHandler.Delete

Operations:

	GET /health                        → HealthHandler.Check
	GET /metrics                       → Prometheus exposition
	GET /                              → API version string

# Middleware

The mux is wrapped, outermost first, in the request logger, request id,
access log, CORS, metrics and panic recovery middleware. Recover passes
the request through unchanged, so the matched pattern is still available
to metrics as the route label, and a recovered panic is counted as a 500.

# Usage

	handler := router.NewRouter(store, tokens, cfg, log)
	server := http.Server{Handler: handler, Addr: ":3000"}
*/
package router
