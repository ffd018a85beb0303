// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the portal API.

# Handler Types

  - AuthHandler: POST /login, exchanges a username and password for a token
  - StateHandler: state listing, lookup and per-state totals
  - DistrictHandler: district create, read, replace and delete
  - HealthHandler: database liveness for load balancers

Every handler except Login and Check sits behind middleware.RequireAuth;
the router applies it, not the handlers.

# Responses

Successful reads answer JSON with camelCase field names. Writes answer a
plain text confirmation. Errors are plain text:

	400  Invalid user / Invalid password        (login)
	400  Invalid JSON / validation message      (district bodies)
	400  Invalid state id / Invalid district id (non-numeric path ids)
	404  State not found / District not found
	500  Internal Server Error                  (details are logged only)

Update and Delete are idempotent: an unknown district id answers 200 and
changes nothing.

# Logging

Handlers log through zerolog.Ctx(r.Context()), which carries the request
id and, behind the auth gate, the username.
*/
package handlers
