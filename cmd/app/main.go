package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vidyut-veedgav/Call-Beta/internal/claim"
	"github.com/vidyut-veedgav/Call-Beta/internal/config"
	"github.com/vidyut-veedgav/Call-Beta/internal/database"
	"github.com/vidyut-veedgav/Call-Beta/internal/database/memory"
	"github.com/vidyut-veedgav/Call-Beta/internal/database/migrations"
	"github.com/vidyut-veedgav/Call-Beta/internal/database/postgres"
	"github.com/vidyut-veedgav/Call-Beta/internal/handler"
	"github.com/vidyut-veedgav/Call-Beta/internal/market"
	"github.com/vidyut-veedgav/Call-Beta/internal/ranking"
	"github.com/vidyut-veedgav/Call-Beta/internal/repository"
	"github.com/vidyut-veedgav/Call-Beta/internal/resolution"
	"github.com/vidyut-veedgav/Call-Beta/internal/server"
	"github.com/vidyut-veedgav/Call-Beta/internal/user"
)

const (
	shutdownTimeout = 10 * time.Second

	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	var (
		ledger repository.Ledger
		dbPool database.Pool
	)

	if cfg.UsePostgres() {
		connString := cfg.GetDBConnString()

		if err := migrations.Up(connString); err != nil {
			slog.Error("Migrations failed", "error", err)
			os.Exit(1)
		}

		pool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
		if err != nil {
			slog.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		ledger = postgres.NewLedger(pool)
		dbPool = pool
	} else {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			if err := store.SeedDemoData(context.Background()); err != nil {
				slog.Error("Demo data seeding failed", "error", err)
				os.Exit(1)
			}
			slog.Info("Demo data seeded")
		}
		ledger = store
	}

	userService := user.NewService(ledger)
	claimService := claim.NewService(ledger)
	marketService := market.NewService(ledger)
	resolutionService := resolution.NewService(ledger)
	rankingService := ranking.NewService(ledger, time.Duration(cfg.LeaderboardCacheTTLSeconds)*time.Second)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool,
		userService, claimService, marketService, resolutionService, rankingService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
