// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/cliparse"
	"github.com/danielhkuo/covid19-portal/db"
	"github.com/danielhkuo/covid19-portal/store"
)

func TestRunCreatesUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")
	cfg := cliparse.UserConfig{
		DatabaseType: "sqlite",
		DatabaseURL:  path,
		Username:     "christopher_phillips",
		Password:     "christy@123",
	}

	if err := run(context.Background(), cfg, zerolog.Nop()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	conn, err := db.Open(db.SQLite, path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer conn.Close()

	user, err := store.New(conn, db.SQLite).GetUser(context.Background(), "christopher_phillips")
	if err != nil {
		t.Fatalf("Expected user to exist: %v", err)
	}
	if user.PasswordHash == cfg.Password {
		t.Error("Password must not be stored in plain text")
	}
	if err := auth.ComparePassword(user.PasswordHash, "christy@123"); err != nil {
		t.Errorf("Stored hash does not match password: %v", err)
	}

	// A second insert of the same username fails
	if err := run(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Error("Expected duplicate username to fail")
	}
}
