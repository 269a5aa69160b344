// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Document keys
// --------------------------------------------------------------------------

const (
	PlayersDocKey        = "vctPlayers/current"
	PlayerEarningsDocKey = "earnings/players"
	TeamEarningsDocKey   = "earnings/teams"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound API requests, not the scrape throttle)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Admin auth for scrape/write endpoints
	AdminToken string

	// Liquipedia scraping
	LiquipediaAPIURL string
	UserAgent        string
	PlayerPageDelay  time.Duration // between player/team page fetches
	StatsPageDelay   time.Duration // between statistics portal fetches
	DetailBatchSize  int

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("NEON_DATABASE_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or NEON_DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 3),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		AdminToken: envOr("ADMIN_TOKEN", ""),

		LiquipediaAPIURL: envOr("LIQUIPEDIA_API_URL", "https://liquipedia.net/valorant/api.php"),
		UserAgent: envOr("SCRAPE_USER_AGENT",
			"GTR-GuessPlayer/1.0 (guess-the-rank project; contact via Discord @feliiiiix)"),
		// Liquipedia rate limits: 1 parse request per 2s is the documented
		// floor for authenticated tools; 1.2s matches the grace we were
		// granted, 30s applies to the heavy statistics portal pages.
		PlayerPageDelay: time.Duration(envInt("PLAYER_PAGE_DELAY_MS", 1200)) * time.Millisecond,
		StatsPageDelay:  time.Duration(envInt("STATS_PAGE_DELAY_MS", 30000)) * time.Millisecond,
		DetailBatchSize: envInt("DETAIL_BATCH_SIZE", 25),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
