package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guesstherank/gtr-data/internal/model"
)

func rosterPage(slug string) string {
	return `<table class="wikitable"><tr>
	  <td class="ID"><a href="/valorant/` + slug + `">` + slug + `</a></td>
	</tr></table>`
}

func profilePage(role string) string {
	return `<div class="fo-nttax-infobox"><div>
	  <div class="infobox-description">Role:</div><div>` + role + `</div>
	</div></div>`
}

func TestScrapePlayers_UnknownType(t *testing.T) {
	h := newTestHandler(newFakeStore(), &fakeFetcher{})
	rec := doRequest(h.ScrapePlayers, http.MethodGet, "/api/v1/scrape/players?type=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(rec)
	assert.Equal(t, false, body["success"])
}

func TestScrapePlayers_RostersMergesAndSaves(t *testing.T) {
	store := newFakeStore()
	// A manually edited record that must survive the resync.
	store.players = seedPlayers([]model.PlayerRecord{{
		Slug:           "TenZ",
		Name:           "TenZ",
		Team:           "Old Team",
		Role:           "Duelist",
		ManuallyEdited: true,
	}})
	fetcher := &fakeFetcher{pages: map[string]string{
		"Sentinels": rosterPage("TenZ"),
	}}

	h := newTestHandler(store, fetcher)
	rec := doRequest(h.ScrapePlayers, http.MethodGet, "/api/v1/scrape/players", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])

	require.NotNil(t, store.players)
	require.Len(t, store.players.Players, 1)
	saved := store.players.Players[0]
	assert.Equal(t, "Sentinels", saved.Team)
	assert.Equal(t, "Duelist", saved.Role, "manual edit survives the resync")
	assert.True(t, saved.ManuallyEdited)
}

func TestScrapePlayers_DetailsWithoutRosterData(t *testing.T) {
	h := newTestHandler(newFakeStore(), &fakeFetcher{})
	rec := doRequest(h.ScrapePlayers, http.MethodGet, "/api/v1/scrape/players?type=details", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync rosters first")
}

func TestScrapePlayers_DetailsBadOffset(t *testing.T) {
	h := newTestHandler(newFakeStore(), &fakeFetcher{})

	for _, offset := range []string{"-1", "abc"} {
		rec := doRequest(h.ScrapePlayers, http.MethodGet, "/api/v1/scrape/players?type=details&offset="+offset, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, offset)
	}
}

func TestScrapePlayers_DetailsEnrichesBatch(t *testing.T) {
	store := newFakeStore()
	store.players = seedPlayers([]model.PlayerRecord{
		{Slug: "TenZ", Name: "TenZ", Team: "Sentinels"},
	})
	fetcher := &fakeFetcher{pages: map[string]string{
		"TenZ": profilePage("Duelist"),
	}}

	h := newTestHandler(store, fetcher)
	rec := doRequest(h.ScrapePlayers, http.MethodGet, "/api/v1/scrape/players?type=details&offset=0", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["updated"])
	assert.Equal(t, float64(0), body["remaining"])
	assert.Nil(t, body["nextOffset"])

	assert.Equal(t, "Duelist", store.players.Players[0].Role)
}

func TestUpdatePlayers(t *testing.T) {
	store := newFakeStore()
	h := newTestHandler(store, &fakeFetcher{})

	body := []byte(`{"players":[{"slug":"TenZ","name":"TenZ","team":"Sentinels","role":"Duelist","manuallyEdited":true}]}`)
	rec := doRequest(h.UpdatePlayers, http.MethodPut, "/api/v1/players", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.players)
	require.Len(t, store.players.Players, 1)
	assert.True(t, store.players.Players[0].ManuallyEdited)
}

func TestUpdatePlayers_RejectsBadPayloads(t *testing.T) {
	h := newTestHandler(newFakeStore(), &fakeFetcher{})

	for _, body := range []string{`{"players":"nope"}`, `{"other":[]}`, `not json`} {
		rec := doRequest(h.UpdatePlayers, http.MethodPut, "/api/v1/players", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "players must be a list", body)
	}
}

func TestGetPlayers_NotFound(t *testing.T) {
	h := newTestHandler(newFakeStore(), &fakeFetcher{})
	rec := doRequest(h.GetPlayers, http.MethodGet, "/api/v1/players", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPlayers_ETagFlow(t *testing.T) {
	store := newFakeStore()
	store.players = seedPlayers([]model.PlayerRecord{
		{Slug: "TenZ", Name: "TenZ", Team: "Sentinels"},
	})
	h := newTestHandler(store, &fakeFetcher{})

	first := doRequest(h.GetPlayers, http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := doRequest(h.GetPlayers, http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	req := doRequestWithHeader(h.GetPlayers, "/api/v1/players", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, req.Code)
}
