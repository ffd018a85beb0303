// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the state, district and user tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == Postgres {
		schema = postgresSchema
	}

	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS state (
    state_id INTEGER PRIMARY KEY,
    state_name TEXT NOT NULL,
    population INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS district (
    district_id INTEGER PRIMARY KEY AUTOINCREMENT,
    district_name TEXT NOT NULL,
    state_id INTEGER NOT NULL,
    cases INTEGER NOT NULL DEFAULT 0,
    cured INTEGER NOT NULL DEFAULT 0,
    active INTEGER NOT NULL DEFAULT 0,
    deaths INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_district_state_id ON district(state_id);

CREATE TABLE IF NOT EXISTS "user" (
    username TEXT PRIMARY KEY,
    password TEXT NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS state (
    state_id INTEGER PRIMARY KEY,
    state_name TEXT NOT NULL,
    population BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS district (
    district_id SERIAL PRIMARY KEY,
    district_name TEXT NOT NULL,
    state_id INTEGER NOT NULL,
    cases BIGINT NOT NULL DEFAULT 0,
    cured BIGINT NOT NULL DEFAULT 0,
    active BIGINT NOT NULL DEFAULT 0,
    deaths BIGINT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_district_state_id ON district(state_id);

CREATE TABLE IF NOT EXISTS "user" (
    username TEXT PRIMARY KEY,
    password TEXT NOT NULL
);
`
