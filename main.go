// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/cliparse"
	"github.com/danielhkuo/covid19-portal/db"
	"github.com/danielhkuo/covid19-portal/logger"
	"github.com/danielhkuo/covid19-portal/router"
	"github.com/danielhkuo/covid19-portal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	logr := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Logger = logr

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		logr.Fatal().Err(err).Msg("unsupported database type")
	}

	// Connect and verify
	dbConn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		logr.Fatal().Err(err).Str("database_type", cfg.DatabaseType).Msg("database connection failed")
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, dialect); err != nil {
		logr.Fatal().Err(err).Msg("schema creation failed")
	}
	logr.Info().Str("database_type", cfg.DatabaseType).Msg("database schema ready")

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logr.Fatal().Err(err).Msg("token manager setup failed")
	}

	handler := router.NewRouter(store.New(dbConn, dialect), tokens, cfg, logr)

	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-ctrlc
		logr.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logr.Error().Err(err).Msg("graceful shutdown failed")
			server.Close()
		}
	}()

	logr.Info().Int("port", cfg.Port).Msg("listening")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Error().Err(err).Msg("server closed")
	} else {
		logr.Info().Msg("server closed")
	}
}
