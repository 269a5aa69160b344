// Package api wires the HTTP surface: router, middleware, and handlers.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/guesstherank/gtr-data/internal/api/handler"
	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/db"
	"github.com/guesstherank/gtr-data/internal/docstore"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Authorization", "X-Scrape-Secret"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := handler.New(handler.Deps{
		Store:   docstore.New(pool.Pool),
		Pool:    pool,
		Cache:   appCache,
		Config:  cfg,
		Players: liquipedia.NewClient(cfg.LiquipediaAPIURL, cfg.UserAgent, cfg.PlayerPageDelay, logger),
		Stats:   liquipedia.NewClient(cfg.LiquipediaAPIURL, cfg.UserAgent, cfg.StatsPageDelay, logger),
		Logger:  logger,
	})

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public reads
		r.Get("/players", h.GetPlayers)
		r.Get("/earnings/{kind}", h.GetEarnings)

		// Admin: scrape triggers and the verbatim roster write. Scrape
		// endpoints get the stricter per-IP budget on top of the shared
		// admin token.
		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin(cfg.AdminToken))
			if cfg.RateLimitEnabled {
				r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
			}
			r.Get("/scrape/players", h.ScrapePlayers)
			r.Get("/scrape/earnings", h.ScrapeEarnings)
			r.Put("/players", h.UpdatePlayers)
		})
	})

	return r
}
