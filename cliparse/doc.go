// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse loads server configuration.

# Sources

Values are layered, later sources winning:

 1. built-in defaults
 2. a .env file in the working directory, if present
 3. COVID_* environment variables (COVID_DATABASE_URL -> database_url)
 4. command-line flags

# Settings

	-p            COVID_PORT                  3000
	-t            COVID_DATABASE_TYPE         sqlite (or postgres)
	-d            COVID_DATABASE_URL          covid19IndiaPortal.db
	-jwt-secret   COVID_JWT_SECRET            required, no default
	-token-ttl    COVID_TOKEN_TTL             0 (tokens never expire)
	-log-level    COVID_LOG_LEVEL             info
	-log-format   COVID_LOG_FORMAT            json (or console)
	-cors-origin  COVID_CORS_ALLOWED_ORIGINS  *

The resulting Config is checked with go-playground/validator; any
violation is returned as an error and the server refuses to start.
*/
package cliparse
