// Package handler provides HTTP handlers for all API endpoints.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/guesstherank/gtr-data/internal/api/respond"
	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/db"
	"github.com/guesstherank/gtr-data/internal/docstore"
	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/scrape"
)

// Store is the document persistence used by the handlers. Implemented by
// docstore.Store; tests substitute an in-memory fake.
type Store interface {
	GetPlayers(ctx context.Context) (*docstore.PlayersDocument, error)
	SetPlayers(ctx context.Context, players []model.PlayerRecord) (*docstore.PlayersDocument, error)
	GetEarnings(ctx context.Context, key string) (*docstore.EarningsDocument, error)
	SetEarnings(ctx context.Context, key string, records []model.EarningsRecord) error
}

// Deps bundles the shared dependencies for all endpoint handlers.
type Deps struct {
	Store  Store
	Pool   *db.Pool
	Cache  *cache.Cache
	Config *config.Config
	// Players is the throttled fetcher for team and profile pages; Stats
	// carries the slower throttle the statistics portals demand.
	Players scrape.PageFetcher
	Stats   scrape.PageFetcher
	Logger  *slog.Logger
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store   Store
	pool    *db.Pool
	cache   *cache.Cache
	cfg     *config.Config
	players scrape.PageFetcher
	stats   scrape.PageFetcher
	logger  *slog.Logger
}

// New creates a Handler from its dependencies.
func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:   d.Store,
		pool:    d.Pool,
		cache:   d.Cache,
		cfg:     d.Config,
		players: d.Players,
		stats:   d.Stats,
		logger:  logger,
	}
}

// serverError logs the failure and sends a 500. Internal detail is surfaced
// only outside production.
func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	msg := "internal server error"
	if !h.cfg.IsProduction() {
		msg = fmt.Sprintf("%s: %v", op, err)
	}
	respond.WriteFailure(w, http.StatusInternalServerError, msg)
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "GTR Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
