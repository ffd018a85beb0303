// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/covid19-portal/db"
	"github.com/danielhkuo/covid19-portal/models"
)

var ErrNotFound = errors.New("not found")

// Store runs the portal's queries against a shared connection handle.
// Every request value is passed as a bound parameter.
type Store struct {
	db      *sql.DB
	dialect db.Dialect
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

// GetUser looks up a user by exact username
func (s *Store) GetUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.queryRow(ctx, `
		SELECT username, password FROM "user" WHERE username = ?
	`, username).Scan(&u.Username, &u.PasswordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user with an already hashed password
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) error {
	_, err := s.exec(ctx, `
		INSERT INTO "user" (username, password) VALUES (?, ?)
	`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ListStates returns every state ordered by state_id
func (s *Store) ListStates(ctx context.Context) ([]models.StateRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT state_id, state_name, population FROM state ORDER BY state_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	states := []models.StateRow{}
	for rows.Next() {
		var st models.StateRow
		if err := rows.Scan(&st.StateID, &st.StateName, &st.Population); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}
	return states, nil
}

func (s *Store) GetState(ctx context.Context, stateID int64) (models.StateRow, error) {
	var st models.StateRow
	err := s.queryRow(ctx, `
		SELECT state_id, state_name, population FROM state WHERE state_id = ?
	`, stateID).Scan(&st.StateID, &st.StateName, &st.Population)

	if errors.Is(err, sql.ErrNoRows) {
		return models.StateRow{}, ErrNotFound
	}
	if err != nil {
		return models.StateRow{}, fmt.Errorf("failed to query state: %w", err)
	}
	return st, nil
}

// DistrictTotals sums the district counters of one state. A state without
// districts yields a zero row rather than no row.
func (s *Store) DistrictTotals(ctx context.Context, stateID int64) (models.StatsRow, error) {
	var stats models.StatsRow
	err := s.queryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(cases), 0),
			COALESCE(SUM(cured), 0),
			COALESCE(SUM(active), 0),
			COALESCE(SUM(deaths), 0)
		FROM district
		WHERE state_id = ?
	`, stateID).Scan(&stats.Districts, &stats.Cases, &stats.Cured, &stats.Active, &stats.Deaths)
	if err != nil {
		return models.StatsRow{}, fmt.Errorf("failed to sum district counters: %w", err)
	}
	return stats, nil
}

// CreateDistrict inserts a district and returns its store-assigned id
func (s *Store) CreateDistrict(ctx context.Context, d models.DistrictRow) (int64, error) {
	var id int64
	err := s.queryRow(ctx, `
		INSERT INTO district (district_name, state_id, cases, cured, active, deaths)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING district_id
	`, d.DistrictName, d.StateID, d.Cases, d.Cured, d.Active, d.Deaths).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert district: %w", err)
	}
	return id, nil
}

func (s *Store) GetDistrict(ctx context.Context, districtID int64) (models.DistrictRow, error) {
	var d models.DistrictRow
	err := s.queryRow(ctx, `
		SELECT district_id, district_name, state_id, cases, cured, active, deaths
		FROM district
		WHERE district_id = ?
	`, districtID).Scan(&d.DistrictID, &d.DistrictName, &d.StateID, &d.Cases, &d.Cured, &d.Active, &d.Deaths)

	if errors.Is(err, sql.ErrNoRows) {
		return models.DistrictRow{}, ErrNotFound
	}
	if err != nil {
		return models.DistrictRow{}, fmt.Errorf("failed to query district: %w", err)
	}
	return d, nil
}

// UpdateDistrict replaces every mutable column. A missing id is not an error.
func (s *Store) UpdateDistrict(ctx context.Context, d models.DistrictRow) error {
	_, err := s.exec(ctx, `
		UPDATE district
		SET district_name = ?, state_id = ?, cases = ?, cured = ?, active = ?, deaths = ?
		WHERE district_id = ?
	`, d.DistrictName, d.StateID, d.Cases, d.Cured, d.Active, d.Deaths, d.DistrictID)
	if err != nil {
		return fmt.Errorf("failed to update district: %w", err)
	}
	return nil
}

// DeleteDistrict removes a district. Deleting a missing id is not an error.
func (s *Store) DeleteDistrict(ctx context.Context, districtID int64) error {
	_, err := s.exec(ctx, `DELETE FROM district WHERE district_id = ?`, districtID)
	if err != nil {
		return fmt.Errorf("failed to delete district: %w", err)
	}
	return nil
}
