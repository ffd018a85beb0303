// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the adapter between the handlers and the relational store.

A Store wraps the process-wide *sql.DB opened in main and is injected into
every handler. Each method runs a single statement with bound parameters:

	s := store.New(conn, dialect)
	row, err := s.GetState(ctx, 8)
	if errors.Is(err, store.ErrNotFound) {
		// 404
	}

Lookups by key return ErrNotFound when no row matches. Update and delete do
not check existence, so repeating them is harmless. DistrictTotals always
returns a row carrying the number of districts summed; a state with no
districts sums to zero.
*/
package store
