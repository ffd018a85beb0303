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
	MsgInvalidDistrictID = "Invalid district id"
	MsgDistrictNotFound  = "District not found"
	MsgInvalidJSON       = "Invalid JSON"
)

type DistrictHandler struct {
	store *store.Store
}

func NewDistrictHandler(s *store.Store) *DistrictHandler {
	return &DistrictHandler{store: s}
}

// parseDistrictBody decodes and validates a district body, writing the 400
// itself when the body is unusable
func parseDistrictBody(w http.ResponseWriter, r *http.Request) (models.DistrictRequest, bool) {
	var req models.DistrictRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidJSON)
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return req, false
	}
	return req, true
}

// Create handles POST /districts/
func (h *DistrictHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := parseDistrictBody(w, r)
	if !ok {
		return
	}

	id, err := h.store.CreateDistrict(r.Context(), req.Row(0))
	if err != nil {
		storeFailure(w, r, err, "failed to create district")
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("district_id", id).
		Int64("state_id", req.StateID).
		Str("by", auth.UsernameFromContext(r.Context())).
		Msg("district created")

	middleware.TextResponse(w, http.StatusOK, models.MsgDistrictAdded)
}

// Get handles GET /districts/{districtId}/
func (h *DistrictHandler) Get(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathID(r, "districtId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidDistrictID)
		return
	}

	row, err := h.store.GetDistrict(r.Context(), districtID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, MsgDistrictNotFound)
		return
	}
	if err != nil {
		storeFailure(w, r, err, "failed to get district")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DistrictFromRow(row))
}

// Update handles PUT /districts/{districtId}/
// Replaces every field; an unknown id is not an error
func (h *DistrictHandler) Update(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathID(r, "districtId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidDistrictID)
		return
	}

	req, ok := parseDistrictBody(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateDistrict(r.Context(), req.Row(districtID)); err != nil {
		storeFailure(w, r, err, "failed to update district")
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("district_id", districtID).
		Str("by", auth.UsernameFromContext(r.Context())).
		Msg("district updated")

	middleware.TextResponse(w, http.StatusOK, models.MsgDistrictUpdated)
}

// Delete handles DELETE /districts/{districtId}/
// Idempotent: deleting an unknown id still answers 200
func (h *DistrictHandler) Delete(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathID(r, "districtId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidDistrictID)
		return
	}

	if err := h.store.DeleteDistrict(r.Context(), districtID); err != nil {
		storeFailure(w, r, err, "failed to delete district")
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("district_id", districtID).
		Str("by", auth.UsernameFromContext(r.Context())).
		Msg("district deleted")

	middleware.TextResponse(w, http.StatusOK, models.MsgDistrictRemoved)
}
