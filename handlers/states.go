// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/covid19-portal/middleware"
	"github.com/danielhkuo/covid19-portal/models"
	"github.com/danielhkuo/covid19-portal/store"
)

const (
	MsgInvalidStateID = "Invalid state id"
	MsgStateNotFound  = "State not found"
)

type StateHandler struct {
	store *store.Store
}

func NewStateHandler(s *store.Store) *StateHandler {
	return &StateHandler{store: s}
}

// List handles GET /states/
func (h *StateHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListStates(r.Context())
	if err != nil {
		storeFailure(w, r, err, "failed to list states")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatesFromRows(rows))
}

// Get handles GET /states/{stateId}/
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidStateID)
		return
	}

	row, err := h.store.GetState(r.Context(), stateID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, MsgStateNotFound)
		return
	}
	if err != nil {
		storeFailure(w, r, err, "failed to get state")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StateFromRow(row))
}

// Stats handles GET /states/{stateId}/stats/
// Sums the counters of every district carrying the state id, whether or not
// a state row exists. An id with neither districts nor a state row is 404; a
// known state with no districts reports zeros.
func (h *StateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidStateID)
		return
	}

	totals, err := h.store.DistrictTotals(r.Context(), stateID)
	if err != nil {
		storeFailure(w, r, err, "failed to compute state stats")
		return
	}

	if totals.Districts == 0 {
		if _, err := h.store.GetState(r.Context(), stateID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				middleware.ErrorResponse(w, http.StatusNotFound, MsgStateNotFound)
				return
			}
			storeFailure(w, r, err, "failed to get state")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsFromRow(totals))
}
