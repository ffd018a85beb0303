// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational store and creates its schema.

# Drivers

Two dialects are supported:

  - sqlite: modernc.org/sqlite, a file path such as covid19IndiaPortal.db
  - postgres: github.com/lib/pq, a postgres:// URL

	dialect, _ := db.ParseDialect(cfg.DatabaseType)
	conn, err := db.Open(dialect, cfg.DatabaseURL)

Open pings the database before returning, so a bad URL fails at startup.

# Placeholders

Queries are written with ? placeholders. Rebind converts them to $1, $2...
for PostgreSQL and leaves them alone for SQLite:

	conn.QueryRow(dialect.Rebind("SELECT ... WHERE state_id = ?"), id)

# Schema Creation

CreateSchema initializes the state, district and user tables:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. An existing database with
the same table layout is left untouched.
*/
package db
