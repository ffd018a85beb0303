// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command adduser creates a portal login. The password is stored as a
// bcrypt hash.
//
//	go run ./cmd/adduser -u christopher_phillips -password christy@123
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/cliparse"
	"github.com/danielhkuo/covid19-portal/db"
	"github.com/danielhkuo/covid19-portal/logger"
	"github.com/danielhkuo/covid19-portal/store"
)

func main() {
	cfg, err := cliparse.ParseUserFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logr := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err := run(context.Background(), cfg, logr); err != nil {
		logr.Fatal().Err(err).Str("username", cfg.Username).Msg("failed to add user")
	}
}

func run(ctx context.Context, cfg cliparse.UserConfig, logr zerolog.Logger) error {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return err
	}

	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn, dialect); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	if err := store.New(conn, dialect).CreateUser(ctx, cfg.Username, hash); err != nil {
		return err
	}

	logr.Info().Str("username", cfg.Username).Msg("user added")
	return nil
}
