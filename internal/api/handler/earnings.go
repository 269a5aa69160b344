package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guesstherank/gtr-data/internal/api/respond"
	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/config"
	"github.com/guesstherank/gtr-data/internal/scrape"
)

// ScrapeEarnings refreshes the earnings documents, selected by ?type.
// @Summary Trigger an earnings scrape
// @Description type=players or type=teams refreshes one leaderboard; with no type both are refreshed sequentially, spaced by the statistics throttle.
// @Tags scrape
// @Produce json
// @Param type query string false "players, teams, or empty for both"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.FailureResponse
// @Router /scrape/earnings [get]
func (h *Handler) ScrapeEarnings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind := r.URL.Query().Get("type")

	doPlayers := kind == "players" || kind == ""
	doTeams := kind == "teams" || kind == ""
	if !doPlayers && !doTeams {
		respond.WriteFailure(w, http.StatusBadRequest, "type must be 'players' or 'teams'")
		return
	}

	var errors []string
	playerCount, teamCount := 0, 0

	if doPlayers {
		n, err := h.refreshPlayerEarnings(ctx)
		if err != nil {
			h.logger.Error("player earnings refresh failed", "error", err)
			errors = append(errors, fmt.Sprintf("%s: %v", scrape.EarningsPlayers, err))
		} else {
			playerCount = n
		}
	}

	if doTeams {
		n, err := h.refreshTeamEarnings(ctx)
		if err != nil {
			h.logger.Error("team earnings refresh failed", "error", err)
			errors = append(errors, fmt.Sprintf("%s: %v", scrape.EarningsTeams, err))
		} else {
			teamCount = n
		}
	}

	resp := map[string]interface{}{
		"success": true,
		"players": playerCount,
		"teams":   teamCount,
		"message": fmt.Sprintf("updated %d players and %d teams", playerCount, teamCount),
	}
	if len(errors) > 0 {
		resp["errors"] = errors
	}
	respond.WriteJSONObject(w, http.StatusOK, resp)
}

func (h *Handler) refreshPlayerEarnings(ctx context.Context) (int, error) {
	records, err := scrape.PlayerEarnings(ctx, h.stats, h.logger)
	if err != nil {
		return 0, err
	}
	if err := h.store.SetEarnings(ctx, config.PlayerEarningsDocKey, records); err != nil {
		return 0, err
	}
	h.cache.Delete(earningsCacheKey(scrape.EarningsPlayers))
	return len(records), nil
}

func (h *Handler) refreshTeamEarnings(ctx context.Context) (int, error) {
	records, err := scrape.TeamEarnings(ctx, h.stats, h.logger)
	if err != nil {
		return 0, err
	}
	if err := h.store.SetEarnings(ctx, config.TeamEarningsDocKey, records); err != nil {
		return 0, err
	}
	h.cache.Delete(earningsCacheKey(scrape.EarningsTeams))
	return len(records), nil
}

// GetEarnings serves one stored earnings document.
// @Summary Get an earnings leaderboard
// @Tags earnings
// @Produce json
// @Param kind path string true "players or teams"
// @Success 200 {object} docstore.EarningsDocument
// @Failure 404 {object} respond.FailureResponse
// @Router /earnings/{kind} [get]
func (h *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var docKey string
	switch kind {
	case scrape.EarningsPlayers:
		docKey = config.PlayerEarningsDocKey
	case scrape.EarningsTeams:
		docKey = config.TeamEarningsDocKey
	default:
		respond.WriteFailure(w, http.StatusBadRequest, "kind must be 'players' or 'teams'")
		return
	}

	key := earningsCacheKey(kind)
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLEarnings, true)
		return
	}

	doc, err := h.store.GetEarnings(r.Context(), docKey)
	if err != nil {
		h.serverError(w, "load earnings document", err)
		return
	}
	if doc == nil {
		respond.WriteFailure(w, http.StatusNotFound, "no earnings data available")
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		h.serverError(w, "encode earnings document", err)
		return
	}

	etag := h.cache.Set(key, data, cache.TTLEarnings)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLEarnings, false)
}

func earningsCacheKey(kind string) string {
	return "earnings:" + kind
}
