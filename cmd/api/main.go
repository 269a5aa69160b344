// Command api is the GTR Data API server.
//
// Usage:
//
//	gtr-api
//	API_PORT=8080 gtr-api

// @title GTR Data API
// @version 1.0.0
// @description VALORANT competitive roster and earnings API. Serves the player snapshot and prize-money leaderboards scraped from Liquipedia, with admin-triggered refresh endpoints.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name GTR
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/guesstherank/gtr-data/internal/api"
	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/db"

	_ "github.com/guesstherank/gtr-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(pool, appCache, cfg, logger)

	// Create HTTP server. Write timeout covers the slowest admin scrape:
	// a details batch of 25 profile pages at the 1.2s throttle.
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting GTR Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
