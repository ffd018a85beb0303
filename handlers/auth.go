// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/middleware"
	"github.com/danielhkuo/covid19-portal/models"
	"github.com/danielhkuo/covid19-portal/store"
)

const (
	MsgInvalidUser     = "Invalid user"
	MsgInvalidPassword = "Invalid password"
)

type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
}

func NewAuthHandler(s *store.Store, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: s, tokens: tokens}
}

// Login handles POST /login
// Verifies username/password and returns a signed token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	// A missing or unparsable body is looked up as an empty username
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		log.Debug().Err(err).Msg("unparsable login body")
		req = models.LoginRequest{}
	}

	user, err := h.store.GetUser(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("username", req.Username).Msg("login failed: unknown user")
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidUser)
		return
	}
	if err != nil {
		storeFailure(w, r, err, "failed to look up user")
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		log.Info().Str("username", req.Username).Msg("login failed: wrong password")
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidPassword)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "")
		return
	}

	log.Info().Str("username", user.Username).Msg("user logged in")
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{JWTToken: token})
}
