// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/covid19-portal/auth"
)

// MsgInvalidToken is the body of every 401
const MsgInvalidToken = "Invalid JWT Token"

// TokenVerifier checks a bearer token and returns the username it carries
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
// On success the username is stored in the request context.
func RequireAuth(tokens TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Debug().Str("path", r.URL.Path).Msg("missing authorization header")
			ErrorResponse(w, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		username, err := tokens.Verify(auth.BearerToken(header))
		if err != nil {
			log.Info().Err(err).Str("path", r.URL.Path).Msg("token rejected")
			ErrorResponse(w, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", username)
		})
		next(w, r.WithContext(auth.WithUsername(r.Context(), username)))
	}
}
