package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/guesstherank/gtr-data/internal/api/respond"
	"github.com/guesstherank/gtr-data/internal/cache"
	"github.com/guesstherank/gtr-data/internal/model"
	"github.com/guesstherank/gtr-data/internal/provider/liquipedia"
	"github.com/guesstherank/gtr-data/internal/scrape"
)

const playersCacheKey = "players:current"

// ScrapePlayers triggers a player scrape pass, selected by ?type.
// @Summary Trigger a player scrape
// @Description type=rosters runs the full roster pass and merges with the stored snapshot; type=details enriches one pagination window of profile pages.
// @Tags scrape
// @Produce json
// @Param type query string false "rosters (default) or details"
// @Param offset query int false "pagination offset for type=details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.FailureResponse
// @Router /scrape/players [get]
func (h *Handler) ScrapePlayers(w http.ResponseWriter, r *http.Request) {
	scrapeType := r.URL.Query().Get("type")
	if scrapeType == "" {
		scrapeType = "rosters"
	}

	switch scrapeType {
	case "rosters":
		h.scrapeRosters(w, r)
	case "details":
		h.scrapeDetails(w, r)
	default:
		respond.WriteFailure(w, http.StatusBadRequest, "type must be 'rosters' or 'details'")
	}
}

// scrapeRosters runs the full roster pass, merges against the stored
// snapshot, and replaces the players document wholesale. Per-team scrape
// failures come back in the errors list alongside partial success.
func (h *Handler) scrapeRosters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.Info("starting roster scrape")

	result := scrape.Rosters(ctx, h.players, h.logger)

	existing, err := h.store.GetPlayers(ctx)
	if err != nil {
		h.serverError(w, "load players document", err)
		return
	}
	var prior []model.PlayerRecord
	if existing != nil {
		prior = existing.Players
	}

	merged := scrape.MergePlayers(result.Players, prior)
	if _, err := h.store.SetPlayers(ctx, merged); err != nil {
		h.serverError(w, "save players document", err)
		return
	}
	h.cache.Delete(playersCacheKey)

	resp := map[string]interface{}{
		"success": true,
		"count":   len(merged),
		"message": fmt.Sprintf("updated %d players across %d regions", len(merged), len(liquipedia.Regions)),
	}
	if len(result.Errors) > 0 {
		resp["errors"] = result.Errors
	}
	respond.WriteJSONObject(w, http.StatusOK, resp)
}

// scrapeDetails enriches one pagination window of the stored roster with
// profile-page details and reports the next offset for the caller's loop.
func (h *Handler) scrapeDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.WriteFailure(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = n
	}

	doc, err := h.store.GetPlayers(ctx)
	if err != nil {
		h.serverError(w, "load players document", err)
		return
	}
	if doc == nil {
		respond.WriteFailure(w, http.StatusBadRequest, "no player data yet, sync rosters first")
		return
	}

	h.logger.Info("fetching details batch", "offset", offset, "batch_size", h.cfg.DetailBatchSize)
	result := scrape.EnrichDetails(ctx, h.players, doc.Players, offset, h.cfg.DetailBatchSize, h.logger)

	if _, err := h.store.SetPlayers(ctx, result.Players); err != nil {
		h.serverError(w, "save players document", err)
		return
	}
	h.cache.Delete(playersCacheKey)

	message := fmt.Sprintf("updated details for %d players, all done", result.Updated)
	if result.Remaining > 0 {
		message = fmt.Sprintf("updated details for %d players, %d remaining", result.Updated, result.Remaining)
	}

	resp := map[string]interface{}{
		"success":    true,
		"updated":    result.Updated,
		"remaining":  result.Remaining,
		"nextOffset": result.NextOffset,
		"message":    message,
	}
	if len(result.Errors) > 0 {
		resp["errors"] = result.Errors
	}
	respond.WriteJSONObject(w, http.StatusOK, resp)
}

// UpdatePlayers persists a caller-supplied full player list verbatim.
// @Summary Replace the players document
// @Description Admin write endpoint. The payload's players field must be a list; it replaces the stored document wholesale.
// @Tags players
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.FailureResponse
// @Router /players [put]
func (h *Handler) UpdatePlayers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Players []model.PlayerRecord `json:"players"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.WriteFailure(w, http.StatusBadRequest, "players must be a list")
		return
	}
	if body.Players == nil {
		respond.WriteFailure(w, http.StatusBadRequest, "players must be a list")
		return
	}

	if _, err := h.store.SetPlayers(r.Context(), body.Players); err != nil {
		h.serverError(w, "save players document", err)
		return
	}
	h.cache.Delete(playersCacheKey)

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("saved %d players", len(body.Players)),
	})
}

// GetPlayers serves the stored players document.
// @Summary Get the current player roster
// @Tags players
// @Produce json
// @Success 200 {object} docstore.PlayersDocument
// @Failure 404 {object} respond.FailureResponse
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	if data, etag, ok := h.cache.Get(playersCacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLPlayers, true)
		return
	}

	doc, err := h.store.GetPlayers(r.Context())
	if err != nil {
		h.serverError(w, "load players document", err)
		return
	}
	if doc == nil {
		respond.WriteFailure(w, http.StatusNotFound, "no player data available")
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		h.serverError(w, "encode players document", err)
		return
	}

	etag := h.cache.Set(playersCacheKey, data, cache.TTLPlayers)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLPlayers, false)
}
